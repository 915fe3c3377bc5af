// Package autostart installs a per-user LaunchAgent that starts the app at login.
package autostart

import (
	"bytes"
	"encoding/xml"
	"errors"
	"os"
	"path/filepath"
	"text/template"
)

// DefaultLabel is the launchd job label and plist file name.
const DefaultLabel = "com.inputtoggle.agent"

var plistTemplate = template.Must(template.New("plist").Funcs(template.FuncMap{
	"xml": escape,
}).Parse(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>Label</key>
	<string>{{xml .Label}}</string>
	<key>ProgramArguments</key>
	<array>
		<string>{{xml .Program}}</string>
	</array>
	<key>RunAtLoad</key>
	<true/>
	<key>KeepAlive</key>
	<false/>
	<key>ProcessType</key>
	<string>Interactive</string>
</dict>
</plist>
`))

// Agent describes the LaunchAgent for one executable.
type Agent struct {
	Label   string
	Program string
	Dir     string
}

// New returns an Agent for the running executable in ~/Library/LaunchAgents.
func New(label string) (*Agent, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	exe, err := os.Executable()
	if err != nil {
		return nil, err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return &Agent{
		Label:   label,
		Program: exe,
		Dir:     filepath.Join(home, "Library", "LaunchAgents"),
	}, nil
}

// Path is the plist location.
func (a *Agent) Path() string {
	return filepath.Join(a.Dir, a.Label+".plist")
}

// Render returns the plist contents.
func (a *Agent) Render() ([]byte, error) {
	if a.Label == "" || a.Program == "" {
		return nil, errors.New("autostart: label and program are required")
	}
	var buf bytes.Buffer
	if err := plistTemplate.Execute(&buf, a); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Installed reports whether the plist exists.
func (a *Agent) Installed() bool {
	_, err := os.Stat(a.Path())
	return err == nil
}

// Install writes the plist. launchd picks it up at the next login.
func (a *Agent) Install() error {
	data, err := a.Render()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(a.Dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(a.Path(), data, 0644)
}

// Remove deletes the plist. A missing file is not an error.
func (a *Agent) Remove() error {
	err := os.Remove(a.Path())
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// Toggle installs or removes the plist and returns the new state.
func (a *Agent) Toggle() (bool, error) {
	if a.Installed() {
		return false, a.Remove()
	}
	return true, a.Install()
}

func escape(s string) (string, error) {
	var buf bytes.Buffer
	if err := xml.EscapeText(&buf, []byte(s)); err != nil {
		return "", err
	}
	return buf.String(), nil
}
