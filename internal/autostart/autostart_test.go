package autostart

import (
	"encoding/xml"
	"io"
	"strings"
	"testing"
)

func TestRenderIsWellFormed(t *testing.T) {
	a := &Agent{Label: DefaultLabel, Program: "/Applications/Input & Toggle.app/Contents/MacOS/inputtoggle", Dir: t.TempDir()}

	data, err := a.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	dec := xml.NewDecoder(strings.NewReader(string(data)))
	dec.Strict = false
	for {
		_, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("plist is not valid XML: %v\n%s", err, data)
		}
	}

	if !strings.Contains(string(data), "Input &amp; Toggle.app") {
		t.Errorf("program path not escaped:\n%s", data)
	}
	if !strings.Contains(string(data), "<string>"+DefaultLabel+"</string>") {
		t.Errorf("label missing:\n%s", data)
	}
}

func TestRenderRequiresFields(t *testing.T) {
	if _, err := (&Agent{Label: DefaultLabel}).Render(); err == nil {
		t.Error("Render() without program should fail")
	}
}

func TestInstallToggleRemove(t *testing.T) {
	a := &Agent{Label: DefaultLabel, Program: "/usr/local/bin/inputtoggle", Dir: t.TempDir()}

	if a.Installed() {
		t.Fatal("Installed() = true before install")
	}

	on, err := a.Toggle()
	if err != nil || !on || !a.Installed() {
		t.Fatalf("Toggle() = %v, %v; installed=%v", on, err, a.Installed())
	}

	on, err = a.Toggle()
	if err != nil || on || a.Installed() {
		t.Fatalf("second Toggle() = %v, %v; installed=%v", on, err, a.Installed())
	}

	if err := a.Remove(); err != nil {
		t.Errorf("Remove() of missing plist = %v, want nil", err)
	}
}
