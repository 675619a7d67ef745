package utils

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitList(t *testing.T) {
	t.Parallel()
	want := []string{"440", "10", "1086940"}
	got := SplitList(" 440 ,10,, 1086940,")
	if !cmp.Equal(want, got) {
		t.Error(cmp.Diff(want, got))
	}
	if got := SplitList(""); len(got) != 0 {
		t.Errorf("expected nothing, got %v", got)
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("STEAMR_TEST_VALUE", "set")
	if got := GetEnv("STEAMR_TEST_VALUE", "fallback"); got != "set" {
		t.Errorf("expected set, got %s", got)
	}
	if got := GetEnv("STEAMR_TEST_UNSET", "fallback"); got != "fallback" {
		t.Errorf("expected fallback, got %s", got)
	}
}

func TestStripHTML(t *testing.T) {
	t.Parallel()
	for input, want := range map[string]string{
		"<p>[ MAPS ]</p><ul><li>Fixed a bug</li></ul>": "[ MAPS ]Fixed a bug",
		"plain   text\n\nhere":                          "plain text here",
		"<b>Bold</b> and <a href=\"#\">link</a>":        "Bold and link",
		"":                                              "",
	} {
		got, err := StripHTML(input)
		if err != nil {
			t.Fatal(err)
		}
		if !cmp.Equal(want, got) {
			t.Error(cmp.Diff(want, got))
		}
	}
}

func TestNewHTTPClient_SetsUserAgent(t *testing.T) {
	t.Parallel()
	var ua string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ua = r.UserAgent()
	}))
	defer ts.Close()

	res, err := NewHTTPClient().Get(ts.URL)
	if err != nil {
		t.Fatal(err)
	}
	res.Body.Close()
	if ua != UserAgent {
		t.Errorf("expected %q, got %q", UserAgent, ua)
	}
}

func TestUARoundtripper_DoesNotModifyRequest(t *testing.T) {
	t.Parallel()
	ts := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, r.UserAgent())
	}))
	defer ts.Close()

	client := &http.Client{Transport: &UARoundtripper{RT: ts.Client().Transport}}
	req, _ := http.NewRequest(http.MethodGet, ts.URL, nil)
	req.Header.Set("User-Agent", "something-else")
	res, err := client.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()
	body, _ := io.ReadAll(res.Body)
	if string(body) != UserAgent {
		t.Errorf("expected %q, got %q", UserAgent, body)
	}
	if req.Header.Get("User-Agent") != "something-else" {
		t.Error("expected the original request to be left alone")
	}
}

func TestExtractDominantColours(t *testing.T) {
	t.Parallel()
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for x := 0; x < 16; x++ {
		for y := 0; y < 16; y++ {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(buf.Bytes())
	}))
	defer ts.Close()

	got, err := ExtractDominantColours(ts.Client(), ts.URL)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) == 0 || got[0] != "#ff0000" {
		t.Errorf("expected red to be dominant, got %v", got)
	}
}

func TestExtractDominantColours_Handle404(t *testing.T) {
	t.Parallel()
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	if _, err := ExtractDominantColours(ts.Client(), ts.URL); err == nil {
		t.Error("expected an error for a missing image")
	}
}

func TestColorToHexString(t *testing.T) {
	t.Parallel()
	want := "#123456"
	got := colorToHexString(color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xff})
	if !cmp.Equal(want, got) {
		t.Error(cmp.Diff(want, got))
	}
}
