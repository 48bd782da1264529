package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/boreq/ircwire/config"
	"github.com/boreq/ircwire/encode"
	"github.com/boreq/ircwire/irc/protocol"
	"github.com/pkg/errors"
)

func TestEncodeRequest(t *testing.T) {
	buf := &bytes.Buffer{}
	r := protocol.NewRequest("PRIVMSG", "#chan").WithSuffix("hello world")
	if err := encodeRequest(buf, encode.UTF8, r); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "PRIVMSG #chan :hello world\r\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestEncodeRequestInvalid(t *testing.T) {
	buf := &bytes.Buffer{}
	r := protocol.NewRequest("PRIVMSG", "#chan").WithSuffix("hello\r\nQUIT")
	err := encodeRequest(buf, encode.UTF8, r)
	if errors.Cause(err) != protocol.ErrStrayTerminator {
		t.Fatalf("wrong error: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestDecodeStream(t *testing.T) {
	input := ":nick!user@host PRIVMSG #chan :hello world\r\n" +
		"PRIVMSG #chan :" + strings.Repeat("a", 100) + "\r\n" +
		"PING\r\n"
	decoder := protocol.NewDecoder(strings.NewReader(input), protocol.WithMaxLineLength(50))

	buf := &bytes.Buffer{}
	if err := decodeStream(decoder, buf); err != nil {
		t.Fatal(err)
	}

	expected := `{"prefix":"nick!user@host","command":"PRIVMSG","params":["#chan"],"suffix":"hello world"}` + "\n" +
		`{"prefix":"","command":"PING","params":[],"suffix":""}` + "\n"
	if buf.String() != expected {
		t.Fatalf("want %q, got %q", expected, buf.String())
	}
}

var applyOverridesTests = []struct {
	configCharset string
	configDebug   bool
	charset       string
	debug         bool

	expectedCharset string
	expectedDebug   bool
	expectedErr     error
}{
	{"utf-8", false, "", false, "utf-8", false, nil},
	{"latin1", false, "", false, "latin1", false, nil},
	{"utf-8", false, "koi8-r", false, "koi8-r", false, nil},
	{"latin1", false, "UTF-8", false, "utf-8", false, nil},
	{"utf-8", false, "", true, "utf-8", true, nil},
	{"utf-8", true, "", false, "utf-8", true, nil},
	{"utf-8", false, "ebcdic", false, "", false, encode.ErrUnknownCharset},
}

func TestApplyOverrides(t *testing.T) {
	for _, tt := range applyOverridesTests {
		conf := config.Default()
		conf.Charset = tt.configCharset
		conf.Debug = tt.configDebug

		codec, err := applyOverrides(conf, tt.charset, tt.debug)
		if errors.Cause(err) != tt.expectedErr {
			t.Fatalf("applyOverrides(%q, %v), want error %v, got %v", tt.charset, tt.debug, tt.expectedErr, err)
		}
		if err != nil {
			if !strings.Contains(err.Error(), "could not select the charset") {
				t.Fatalf("error is not wrapped: %s", err)
			}
			continue
		}
		if codec.Name() != tt.expectedCharset {
			t.Fatalf("applyOverrides(%q, %v), want charset %s, got %s", tt.charset, tt.debug, tt.expectedCharset, codec.Name())
		}
		if conf.Debug != tt.expectedDebug {
			t.Fatalf("applyOverrides(%q, %v), want debug %v, got %v", tt.charset, tt.debug, tt.expectedDebug, conf.Debug)
		}
	}
}
