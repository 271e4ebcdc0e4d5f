package httpclient

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWithUserAgentOverridesHeader(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("User-Agent")
	}))
	defer srv.Close()

	d := WithLogging(WithUserAgent(Static{HTTPClient: srv.Client()}, "hudmirror-test"))
	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("User-Agent", "other")

	resp, err := d.Client().Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()

	if got != "hudmirror-test" {
		t.Fatalf("user agent mismatch: got=%q", got)
	}
	if req.Header.Get("User-Agent") != "other" {
		t.Fatal("original request was modified")
	}
}

func TestWrapDoesNotMutateInnerClient(t *testing.T) {
	inner := &http.Client{}
	d := WithUserAgent(Static{HTTPClient: inner}, "ua")
	if d.Client() == inner {
		t.Fatal("expected a cloned client")
	}
	if inner.Transport != nil {
		t.Fatal("inner client transport was replaced")
	}
}
