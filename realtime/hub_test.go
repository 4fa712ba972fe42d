package realtime

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestLeaveUnknownGroupIsNoOp(t *testing.T) {
	hub := NewHub()
	hub.Leave("missing", NewConn(nil))

	if hub.GroupSize("missing") != 0 {
		t.Fatal("leave must not create group entries")
	}
}

func TestJoinLeaveMembership(t *testing.T) {
	hub := NewHub()
	a := NewConn(nil)
	b := NewConn(nil)

	hub.Join("g", a)
	hub.Join("g", b)
	if hub.GroupSize("g") != 2 {
		t.Fatalf("size = %d, want 2", hub.GroupSize("g"))
	}

	hub.Leave("g", a)
	if hub.GroupSize("g") != 1 {
		t.Fatalf("size after leave = %d, want 1", hub.GroupSize("g"))
	}

	// Leaving a connection that was never registered changes nothing.
	hub.Leave("g", NewConn(nil))
	if hub.GroupSize("g") != 1 {
		t.Fatal("unregistered leave must be a no-op")
	}
}

func TestBroadcastUnknownGroupIsNoOp(t *testing.T) {
	NewHub().Broadcast("nobody-home", []byte("hello"))
}

// relayServer upgrades each request, joins the connection to the group in
// the path and relays every inbound frame to the group, mirroring the chat
// endpoint.
func relayServer(t *testing.T, hub *Hub) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		groupID := strings.TrimPrefix(r.URL.Path, "/ws/")
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		conn := NewConn(ws)
		hub.Join(groupID, conn)
		defer func() {
			hub.Leave(groupID, conn)
			ws.Close()
		}()
		for {
			_, data, err := ws.ReadMessage()
			if err != nil {
				return
			}
			hub.Broadcast(groupID, data)
		}
	}))
}

func dial(t *testing.T, srv *httptest.Server, groupID string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/" + groupID
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", url, err)
	}
	return ws
}

func waitForSize(t *testing.T, hub *Hub, groupID string, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if hub.GroupSize(groupID) == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("group %s never reached size %d (have %d)", groupID, want, hub.GroupSize(groupID))
}

func readFrame(t *testing.T, ws *websocket.Conn) string {
	t.Helper()
	ws.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := ws.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	return string(data)
}

func TestRelayStaysWithinGroup(t *testing.T) {
	hub := NewHub()
	srv := relayServer(t, hub)
	defer srv.Close()

	sender := dial(t, srv, "g1")
	defer sender.Close()
	peer := dial(t, srv, "g1")
	defer peer.Close()
	outsider := dial(t, srv, "g2")
	defer outsider.Close()

	waitForSize(t, hub, "g1", 2)
	waitForSize(t, hub, "g2", 1)

	if err := sender.WriteMessage(websocket.TextMessage, []byte("hello group")); err != nil {
		t.Fatalf("write: %v", err)
	}

	// Relay echoes to every member of the group, the sender included.
	if got := readFrame(t, peer); got != "hello group" {
		t.Fatalf("peer got %q", got)
	}
	if got := readFrame(t, sender); got != "hello group" {
		t.Fatalf("sender echo got %q", got)
	}

	// A different group never sees the frame.
	outsider.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	if _, _, err := outsider.ReadMessage(); err == nil {
		t.Fatal("outsider received a frame from another group")
	}
}

func TestServerSideBroadcastReachesGroup(t *testing.T) {
	hub := NewHub()
	srv := relayServer(t, hub)
	defer srv.Close()

	member := dial(t, srv, "room")
	defer member.Close()
	waitForSize(t, hub, "room", 1)

	hub.Broadcast("room", []byte(`{"message":"persisted"}`))

	if got := readFrame(t, member); got != `{"message":"persisted"}` {
		t.Fatalf("member got %q", got)
	}
}

func TestDisconnectLeavesRegistry(t *testing.T) {
	hub := NewHub()
	srv := relayServer(t, hub)
	defer srv.Close()

	member := dial(t, srv, "room")
	waitForSize(t, hub, "room", 1)

	member.Close()
	waitForSize(t, hub, "room", 0)
}
