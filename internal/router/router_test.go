package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"petmate/internal/router"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	h, err := router.NewRouter(router.Options{DataDir: t.TempDir()})
	if err != nil {
		t.Fatalf("new router: %v", err)
	}
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd_PetCareFlow(t *testing.T) {
	ts := newTestServer(t)
	user := "mina"

	// 1) Signup + login (modo dev: sin token en la respuesta)
	{
		st, _ := doReq(t, ts.URL, "POST", "/auth/signup", "", map[string]any{
			"username": user, "password": "secret123",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 signup, got %d", st)
		}

		st, body := doReq(t, ts.URL, "POST", "/auth/login", "", map[string]any{
			"username": user, "password": "secret123",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 login, got %d body=%s", st, string(body))
		}
		var resp struct {
			Username string `json:"username"`
			Admin    bool   `json:"admin"`
			Token    string `json:"token"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Username != user || resp.Admin {
			t.Fatalf("unexpected session: %+v", resp)
		}
		if resp.Token != "" {
			t.Fatalf("dev mode should not issue tokens, got %q", resp.Token)
		}
	}

	// 2) Sin header de usuario no hay acceso
	{
		st, _ := doReq(t, ts.URL, "GET", "/pets", "", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 without user, got %d", st)
		}
	}

	// 3) Alta de mascota
	petID := createPet(t, ts.URL, user, map[string]any{
		"name":      "초코",
		"species":   "개",
		"breed":     "푸들",
		"weight_kg": 5,
	})

	// 4) Resumen diario: ración recomendada para perro de 5kg
	{
		st, body := doReq(t, ts.URL, "GET", "/pets/"+petID+"/summary", user, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 summary, got %d body=%s", st, string(body))
		}
		var resp struct {
			FoodGrams  int `json:"food_grams"`
			SnackLimit int `json:"snack_limit_grams"`
			WaterML    int `json:"water_ml"`
			EatenGrams int `json:"eaten_grams"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.FoodGrams != 63 || resp.SnackLimit != 6 || resp.WaterML != 300 {
			t.Fatalf("unexpected recommendations: %+v", resp)
		}
		if resp.EatenGrams != 0 {
			t.Fatalf("expected nothing eaten yet, got %d", resp.EatenGrams)
		}
	}

	// 5) Registrar comida; cantidad 0 se omite con 204
	{
		st, body := doReq(t, ts.URL, "POST", "/pets/"+petID+"/logs/feed", user, map[string]any{
			"amount": 30, "memo": "아침",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 feed log, got %d body=%s", st, string(body))
		}

		st, _ = doReq(t, ts.URL, "POST", "/pets/"+petID+"/logs/feed", user, map[string]any{
			"amount": 0,
		})
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 for zero amount, got %d", st)
		}

		st, body = doReq(t, ts.URL, "GET", "/pets/"+petID+"/logs/feed", user, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 listing logs, got %d", st)
		}
		var resp struct {
			Entries []struct {
				LogID  string `json:"log_id"`
				Amount int    `json:"amount"`
			} `json:"entries"`
		}
		_ = json.Unmarshal(body, &resp)
		if len(resp.Entries) != 1 || resp.Entries[0].Amount != 30 {
			t.Fatalf("expected single 30g entry, got %+v", resp.Entries)
		}
	}

	// 6) Pauta de medicación + marcar toma
	scheduleID := createSchedule(t, ts.URL, user, petID, map[string]any{
		"drug":  "항생제",
		"times": "08:00, 20:00",
	})
	{
		st, body := doReq(t, ts.URL, "PUT", "/pets/"+petID+"/medications/"+scheduleID+"/doses/08:00/taken", user, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 mark taken, got %d body=%s", st, string(body))
		}

		st, body = doReq(t, ts.URL, "GET", "/pets/"+petID+"/medications/today", user, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 doses, got %d", st)
		}
		var doses []struct {
			Time  string `json:"time"`
			Taken bool   `json:"taken"`
		}
		_ = json.Unmarshal(body, &doses)
		if len(doses) != 2 {
			t.Fatalf("expected 2 doses, got %+v", doses)
		}
		taken := 0
		for _, d := range doses {
			if d.Taken {
				taken++
			}
		}
		if taken != 1 {
			t.Fatalf("expected exactly one taken dose, got %+v", doses)
		}
	}

	// 7) Evento de hospital
	{
		st, body := doReq(t, ts.URL, "POST", "/pets/"+petID+"/hospital-events", user, map[string]any{
			"title": "예방접종", "date": "2025-06-20", "time": "14:30",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 hospital event, got %d body=%s", st, string(body))
		}
	}

	// 8) Borrar la mascota NO borra consumos ni pautas ni eventos
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/pets/"+petID, user, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete pet, got %d", st)
		}

		st, body := doReq(t, ts.URL, "GET", "/pets/"+petID+"/logs/feed", user, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 orphan logs, got %d", st)
		}
		var resp struct {
			Entries []json.RawMessage `json:"entries"`
		}
		_ = json.Unmarshal(body, &resp)
		if len(resp.Entries) != 1 {
			t.Fatalf("expected orphaned feed entry to survive, got %d", len(resp.Entries))
		}

		st, body = doReq(t, ts.URL, "GET", "/pets/"+petID+"/medications", user, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 orphan schedules, got %d", st)
		}
		var scheds []json.RawMessage
		_ = json.Unmarshal(body, &scheds)
		if len(scheds) != 1 {
			t.Fatalf("expected orphaned schedule to survive, got %d", len(scheds))
		}
	}

	// 9) Borrar la pauta sí purga su adherencia
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/medications/"+scheduleID, user, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete schedule, got %d", st)
		}

		st, body := doReq(t, ts.URL, "GET", "/pets/"+petID+"/medications/today", user, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 doses after delete, got %d", st)
		}
		var doses []json.RawMessage
		_ = json.Unmarshal(body, &doses)
		if len(doses) != 0 {
			t.Fatalf("expected no doses after schedule delete, got %d", len(doses))
		}
	}
}

func TestHTTP_AdminEndpointsRequireAdminUser(t *testing.T) {
	ts := newTestServer(t)

	for _, u := range []string{"mina", "admin"} {
		st, _ := doReq(t, ts.URL, "POST", "/auth/signup", "", map[string]any{
			"username": u, "password": "secret123",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 signup %s, got %d", u, st)
		}
	}

	// usuario común: 403
	{
		st, _ := doReq(t, ts.URL, "GET", "/admin/stats", "mina", nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 for non-admin, got %d", st)
		}
	}

	// admin: stats y listado
	{
		st, body := doReq(t, ts.URL, "GET", "/admin/stats", "admin", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 admin stats, got %d body=%s", st, string(body))
		}

		st, body = doReq(t, ts.URL, "GET", "/admin/users", "admin", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 admin users, got %d", st)
		}
		var list []struct {
			Username string `json:"username"`
			Admin    bool   `json:"admin"`
		}
		_ = json.Unmarshal(body, &list)
		if len(list) != 2 {
			t.Fatalf("expected 2 users, got %+v", list)
		}
	}

	// admin no puede borrarse a sí mismo
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/admin/users/admin", "admin", nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 self-delete, got %d", st)
		}
	}

	// borrar a otro funciona; repetir da 404
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/admin/users/mina", "admin", nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete user, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "DELETE", "/admin/users/mina", "admin", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 on repeat delete, got %d", st)
		}
	}
}

func TestHTTP_DataResets(t *testing.T) {
	ts := newTestServer(t)
	user := "mina"

	st, _ := doReq(t, ts.URL, "POST", "/auth/signup", "", map[string]any{
		"username": user, "password": "secret123",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 signup, got %d", st)
	}

	petID := createPet(t, ts.URL, user, map[string]any{"name": "초코", "species": "개", "weight_kg": 5})
	st, _ = doReq(t, ts.URL, "POST", "/pets/"+petID+"/logs/feed", user, map[string]any{"amount": 30})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 feed log, got %d", st)
	}

	// reset de consumo: borra logs, conserva mascotas
	{
		st, _ := doReq(t, ts.URL, "POST", "/data/reset/consumption", user, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 reset, got %d", st)
		}

		st, body := doReq(t, ts.URL, "GET", "/pets/"+petID+"/logs/feed", user, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 logs, got %d", st)
		}
		var resp struct {
			Entries []json.RawMessage `json:"entries"`
		}
		_ = json.Unmarshal(body, &resp)
		if len(resp.Entries) != 0 {
			t.Fatalf("expected empty log after reset, got %d", len(resp.Entries))
		}

		st, _ = doReq(t, ts.URL, "GET", "/pets/"+petID, user, nil)
		if st != http.StatusOK {
			t.Fatalf("expected pet to survive consumption reset, got %d", st)
		}
	}

	// reset de dominio: borra mascotas y deja el catálogo con la fila semilla
	{
		st, _ := doReq(t, ts.URL, "POST", "/data/reset/domain", user, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 domain reset, got %d", st)
		}

		st, _ = doReq(t, ts.URL, "GET", "/pets/"+petID, user, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 pet after domain reset, got %d", st)
		}

		st, body := doReq(t, ts.URL, "GET", "/unsafe-items", user, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 unsafe items, got %d", st)
		}
		var items []struct {
			Name string `json:"name"`
		}
		_ = json.Unmarshal(body, &items)
		if len(items) != 1 || items[0].Name != "초콜릿" {
			t.Fatalf("expected chocolate-only catalog, got %+v", items)
		}
	}
}

func createPet(t *testing.T, baseURL, user string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/pets", user, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create pet, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create pet: missing id body=%s", string(body))
	}
	return resp.ID
}

func createSchedule(t *testing.T, baseURL, user, petID string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/pets/"+petID+"/medications", user, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create schedule, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create schedule: missing id body=%s", string(body))
	}
	return resp.ID
}

func doReq(t *testing.T, baseURL, method, path, debugUser string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUser != "" {
		req.Header.Set("X-Debug-User", debugUser)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
