package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/cache"
	"github.com/katalvlaran/mazepath/server"
)

func newTestServer(t *testing.T, opts ...server.Option) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(server.New(opts...))
	t.Cleanup(ts.Close)
	return ts
}

func post(t *testing.T, url, body string) (int, map[string]any) {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestSolve(t *testing.T) {
	ts := newTestServer(t)

	code, out := post(t, ts.URL+"/solve", `{"rows":["I0","0X"]}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "found", out["outcome"])
	assert.Equal(t, []any{[]any{1.0, 1.0}, []any{2.0, 1.0}, []any{2.0, 2.0}}, out["path"])
	assert.Equal(t, 2.0, out["length"])

	code, out = post(t, ts.URL+"/solve", `{"rows":["I1","1X"]}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "empty_path", out["outcome"])
	assert.Equal(t, []any{}, out["path"])

	code, out = post(t, ts.URL+"/solve", `{"rows":["0X","00"]}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "no_start", out["outcome"])
}

func TestSolve_BadRequests(t *testing.T) {
	ts := newTestServer(t)
	for name, body := range map[string]string{
		"NotJSON":      `rows`,
		"UnknownField": `{"grid":["I0","0X"]}`,
		"NonSquare":    `{"rows":["I0X","0X"]}`,
		"UnknownCell":  `{"rows":["IZ","0X"]}`,
	} {
		t.Run(name, func(t *testing.T) {
			code, out := post(t, ts.URL+"/solve", body)
			assert.Equal(t, http.StatusBadRequest, code)
			assert.NotEmpty(t, out["error"])
		})
	}

	resp, err := http.Get(ts.URL + "/solve")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSolve_Cache(t *testing.T) {
	c, err := cache.Open("", cache.WithInMemory())
	require.NoError(t, err)
	defer c.Close()
	ts := newTestServer(t, server.WithCache(c))

	_, first := post(t, ts.URL+"/solve", `{"rows":["I0","0X"]}`)
	_, second := post(t, ts.URL+"/solve", `{"rows":["I0","0X"]}`)
	assert.Nil(t, first["cached"])
	assert.Equal(t, true, second["cached"])
	assert.Equal(t, first["path"], second["path"])

	resp, err := http.Get(ts.URL + "/stats")
	require.NoError(t, err)
	defer resp.Body.Close()
	var st cache.Stats
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&st))
	assert.Equal(t, cache.Stats{Hits: 1, Misses: 1}, st)
}

func TestBreach(t *testing.T) {
	ts := newTestServer(t)
	code, out := post(t, ts.URL+"/breach", `{"rows":["I11X","1111","1111","1111"]}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "found", out["outcome"])
	assert.Equal(t, []any{[]any{1.0, 2.0}, []any{1.0, 3.0}}, out["walls"])
	assert.Equal(t, 1.0, out["reachable"])

	_, out = post(t, ts.URL+"/breach", `{"rows":["000I","1110","X100","1001"]}`)
	assert.Equal(t, 9.0, out["reachable"])
}

func TestGenerate(t *testing.T) {
	ts := newTestServer(t, server.WithMaxDimension(50))
	body := `{"dimension":5,"obstacles":[[2,3]],"random_obstacles":3,"start":[1,1],"target":[5,5],"seed":7}`

	code, a := post(t, ts.URL+"/generate", body)
	require.Equal(t, http.StatusOK, code)
	_, b := post(t, ts.URL+"/generate", body)
	assert.Len(t, a["rows"], 5)
	assert.Equal(t, a["rows"], b["rows"])
	assert.Contains(t, a["result"], "outcome")

	code, _ = post(t, ts.URL+"/generate", `{"dimension":51,"start":[1,1],"target":[2,2]}`)
	assert.Equal(t, http.StatusBadRequest, code)
	code, _ = post(t, ts.URL+"/generate", `{"dimension":3,"start":[1,1],"target":[1,1]}`)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "ok", string(body))
}

func TestPlay(t *testing.T) {
	ts := newTestServer(t)
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/play"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	for _, tc := range []struct {
		msg, key, want string
	}{
		{`{"rows":["I0","0X"]}`, "outcome", "found"},
		{`{"rows":["X"]}`, "outcome", "no_start"},
		{`{"rows":["I0X"]}`, "error", ""},
		{`not json`, "error", ""},
	} {
		require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(tc.msg)))
		var out map[string]any
		require.NoError(t, conn.ReadJSON(&out))
		require.Contains(t, out, tc.key, tc.msg)
		if tc.want != "" {
			assert.Equal(t, tc.want, out[tc.key])
		}
	}
}

// TestPlay_ReadLimit closes the session on a message above the body limit,
// the same cap /solve applies.
func TestPlay_ReadLimit(t *testing.T) {
	ts := newTestServer(t)
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/play"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	row := strings.Repeat("0", 2100)
	rows := make([]string, 2100)
	for i := range rows {
		rows[i] = row
	}
	rows[0] = "I" + row[1:]
	rows[2099] = row[1:] + "X"
	msg, err := json.Marshal(map[string][]string{"rows": rows})
	require.NoError(t, err)
	require.Greater(t, len(msg), 4<<20)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(10*time.Second)))
	if err = conn.WriteMessage(websocket.TextMessage, msg); err == nil {
		_, _, err = conn.ReadMessage()
	}
	require.Error(t, err)
	var ce *websocket.CloseError
	if errors.As(err, &ce) {
		assert.Equal(t, websocket.CloseMessageTooBig, ce.Code)
	}

	// A fresh session still answers small requests.
	conn2, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn2.Close()
	require.NoError(t, conn2.WriteMessage(websocket.TextMessage, []byte(`{"rows":["IX","00"]}`)))
	var out map[string]any
	require.NoError(t, conn2.ReadJSON(&out))
	assert.Equal(t, "found", out["outcome"])
}

func TestListenAndServe(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.New().ListenAndServe(ctx, addr) }()

	require.Eventually(t, func() bool {
		resp, err := http.Post("http://"+addr+"/solve", "application/json", bytes.NewBufferString(`{"rows":["IX","00"]}`))
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not stop")
	}
}
