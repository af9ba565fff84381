package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/meltui/melt/pkg/reactive"
	"github.com/meltui/melt/pkg/theme"
	"github.com/meltui/melt/pkg/vdom"
)

func newTestServer(t *testing.T, cfg Config) (*Server, *httptest.Server) {
	t.Helper()
	if cfg.MetricsRegistry == nil {
		cfg.MetricsRegistry = prometheus.NewRegistry()
	}
	s, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(func() {
		ts.Close()
		_ = s.Shutdown(context.Background())
	})
	return s, ts
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, string(body)
}

func dial(t *testing.T, ts *httptest.Server, demo string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/" + demo
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", url, err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) liveMessage {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var msg liveMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	return msg
}

func TestIndexListsDemos(t *testing.T) {
	_, ts := newTestServer(t, Config{})

	status, body := get(t, ts.URL+"/")
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	for _, name := range []string{"radio", "select", "tabbar", "button"} {
		if !strings.Contains(body, `href="/demos/`+name+`"`) {
			t.Errorf("index has no link to %s", name)
		}
	}
	if strings.Contains(body, "new WebSocket") {
		t.Error("index should not carry the live client")
	}
}

func TestDemoPage(t *testing.T) {
	_, ts := newTestServer(t, Config{})

	status, body := get(t, ts.URL+"/demos/button")
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	for _, want := range []string{`id="melt-live"`, `data-demo="button"`, "count: 0", "new WebSocket", ".melt-button"} {
		if !strings.Contains(body, want) {
			t.Errorf("demo page missing %q", want)
		}
	}
}

func TestUnknownDemo(t *testing.T) {
	_, ts := newTestServer(t, Config{})

	if status, _ := get(t, ts.URL+"/demos/nope"); status != http.StatusNotFound {
		t.Errorf("page status = %d, want 404", status)
	}
	if status, _ := get(t, ts.URL+"/ws/nope"); status != http.StatusNotFound {
		t.Errorf("ws status = %d, want 404", status)
	}
}

func TestHealthAndMetrics(t *testing.T) {
	_, ts := newTestServer(t, Config{MetricsNamespace: "gallerytest"})

	if status, body := get(t, ts.URL+"/healthz"); status != http.StatusOK || body != "ok" {
		t.Fatalf("healthz = %d %q", status, body)
	}
	get(t, ts.URL+"/demos/radio")

	status, body := get(t, ts.URL+"/metrics")
	if status != http.StatusOK {
		t.Fatalf("metrics status = %d", status)
	}
	if !strings.Contains(body, `gallerytest_http_requests_total{method="GET",route="/demos/{name}",status="200"} 1`) {
		t.Errorf("metrics missing demo request counter:\n%s", body)
	}
}

func TestLiveChannelDispatch(t *testing.T) {
	_, ts := newTestServer(t, Config{})
	conn := dial(t, ts, "button")

	first := readMessage(t, conn)
	if !strings.Contains(first.HTML, "count: 0") {
		t.Fatalf("initial render = %q", first.HTML)
	}

	// h1 is "Add"; "Reset" is disabled and carries no handler yet.
	if err := conn.WriteJSON(vdom.Event{HID: "h1", Type: "onclick"}); err != nil {
		t.Fatal(err)
	}
	msg := readMessage(t, conn)
	if msg.Error != "" {
		t.Fatalf("error = %q", msg.Error)
	}
	if !strings.Contains(msg.HTML, "count: 1") {
		t.Fatalf("after click = %q", msg.HTML)
	}

	// Reset is now interactive as h2.
	if err := conn.WriteJSON(vdom.Event{HID: "h2", Type: "onclick"}); err != nil {
		t.Fatal(err)
	}
	if msg := readMessage(t, conn); !strings.Contains(msg.HTML, "count: 0") {
		t.Fatalf("after reset = %q", msg.HTML)
	}
}

func TestLiveChannelErrors(t *testing.T) {
	_, ts := newTestServer(t, Config{})
	conn := dial(t, ts, "button")
	readMessage(t, conn)

	if err := conn.WriteJSON(vdom.Event{HID: "h99", Type: "onclick"}); err != nil {
		t.Fatal(err)
	}
	if msg := readMessage(t, conn); msg.Code != "M031" || !strings.Contains(msg.Error, "h99") {
		t.Errorf("unknown hid error = %+v", msg)
	}

	if err := conn.WriteMessage(websocket.TextMessage, []byte("{not json")); err != nil {
		t.Fatal(err)
	}
	if msg := readMessage(t, conn); msg.Code != "M030" {
		t.Errorf("malformed frame error = %+v", msg)
	}

	// The connection survives both.
	if err := conn.WriteJSON(vdom.Event{HID: "h1", Type: "onclick"}); err != nil {
		t.Fatal(err)
	}
	if msg := readMessage(t, conn); !strings.Contains(msg.HTML, "count: 1") {
		t.Errorf("after recovery = %q", msg.HTML)
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	_, ts := newTestServer(t, Config{})
	a := dial(t, ts, "button")
	b := dial(t, ts, "button")
	readMessage(t, a)
	readMessage(t, b)

	if err := a.WriteJSON(vdom.Event{HID: "h1", Type: "onclick"}); err != nil {
		t.Fatal(err)
	}
	readMessage(t, a)

	if err := b.WriteJSON(vdom.Event{HID: "h1", Type: "onclick"}); err != nil {
		t.Fatal(err)
	}
	if msg := readMessage(t, b); !strings.Contains(msg.HTML, "count: 1") {
		t.Errorf("second session saw shared state: %q", msg.HTML)
	}
}

func TestSetThemeRerendersSessions(t *testing.T) {
	s, ts := newTestServer(t, Config{})
	conn := dial(t, ts, "radio")
	first := readMessage(t, conn)
	if !strings.Contains(first.HTML, theme.Light().Common.ColorPrimary) {
		t.Fatalf("initial render lacks light primary: %q", first.HTML)
	}

	s.SetTheme(theme.Dark())

	msg := readMessage(t, conn)
	if !strings.Contains(msg.HTML, theme.Dark().Common.ColorPrimary) {
		t.Errorf("re-render lacks dark primary: %q", msg.HTML)
	}
}

func TestShutdownClosesLiveConnections(t *testing.T) {
	s, ts := newTestServer(t, Config{})
	conn := dial(t, ts, "tabbar")
	readMessage(t, conn)

	if err := s.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}

	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, _, err := conn.ReadMessage()
	if !websocket.IsCloseError(err, websocket.CloseGoingAway) {
		t.Errorf("ReadMessage() error = %v, want going-away close", err)
	}
	if n := s.hub.len(); n != 0 {
		t.Errorf("hub still has %d subscribers", n)
	}
}

func TestThemeWatcherReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "brand.yaml")
	if err := os.WriteFile(path, []byte("common:\n  color_primary: \"#111111\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	changed := make(chan struct{}, 1)
	w, err := newThemeWatcher(path, 10*time.Millisecond, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	}, testLogger())
	if err != nil {
		t.Fatalf("newThemeWatcher() error = %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	// Unrelated files in the same directory are ignored.
	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case <-changed:
		t.Fatal("change reported for an unrelated file")
	case <-time.After(100 * time.Millisecond):
	}

	if err := os.WriteFile(path, []byte("common:\n  color_primary: \"#222222\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestThemeWatcherReleasesTrackingState(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "brand.yaml")
	if err := os.WriteFile(path, []byte("common: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	before := reactive.TrackedGoroutines()
	changed := make(chan struct{}, 1)
	w, err := newThemeWatcher(path, 10*time.Millisecond, func() {
		// Reloads write signals, which allocates tracking state on this goroutine.
		_ = reactive.CurrentOwner()
		select {
		case changed <- struct{}{}:
		default:
		}
	}, testLogger())
	if err != nil {
		t.Fatalf("newThemeWatcher() error = %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		w.Run(ctx)
	}()

	if err := os.WriteFile(path, []byte("common:\n  color_primary: \"#222222\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	if n := reactive.TrackedGoroutines(); n > before {
		t.Errorf("tracked goroutines = %d after Run returned, want <= %d", n, before)
	}
}

func TestReloadTheme(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "brand.yaml")
	if err := os.WriteFile(path, []byte("extends: dark\ncommon:\n  color_primary: \"#123456\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, _ := newTestServer(t, Config{ThemeFile: path})

	s.reloadTheme()
	th := s.Theme()
	if th.Common.ColorPrimary != "#123456" || th.Name != "brand" {
		t.Fatalf("theme = %+v", th)
	}
	if th.Select != theme.Dark().Select {
		t.Error("extends: dark did not fill the select palette")
	}

	// A broken file keeps the current theme.
	if err := os.WriteFile(path, []byte("common: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s.reloadTheme()
	if got := s.Theme().Common.ColorPrimary; got != "#123456" {
		t.Errorf("primary after failed reload = %q", got)
	}
}
