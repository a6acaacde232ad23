package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/wricardo/jungle-game/game/config"
	"github.com/wricardo/jungle-game/game/engine"
)

const sprintPosition = "7/3r3/7/7/7/7/7/7/L6 b"

func createTestSettings(t *testing.T) *config.Settings {
	t.Helper()
	dir := t.TempDir()
	data, err := json.Marshal(engine.Setup{
		Name:        "sprint",
		Description: "Black rat one step from the red den",
		Position:    sprintPosition,
	})
	if err != nil {
		t.Fatalf("Failed to marshal setup: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "sprint.json"), data, 0644); err != nil {
		t.Fatalf("Failed to write setup: %v", err)
	}
	return &config.Settings{
		SetupsDir:    dir,
		DefaultSetup: "classic",
		LogLevel:     "info",
		FirstSide:    "black",
	}
}

func TestConstants(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}
	if AppName != "Jungle" {
		t.Errorf("Expected app name Jungle, got %s", AppName)
	}
}

func TestNewLogger(t *testing.T) {
	for _, level := range []string{"debug", "info", "WARN", "error"} {
		t.Run(level, func(t *testing.T) {
			log, err := newLogger(level)
			if err != nil {
				t.Fatalf("newLogger(%q) failed: %v", level, err)
			}
			if log == nil {
				t.Fatal("Expected a logger")
			}
		})
	}

	if _, err := newLogger("loud"); err == nil {
		t.Error("Expected error for unknown level")
	}
}

func TestInitializeServices(t *testing.T) {
	settings := createTestSettings(t)

	svc, setups, err := initializeServices(settings, zap.NewNop().Sugar())
	if err != nil {
		t.Fatalf("Failed to initialize services: %v", err)
	}
	if svc == nil || setups == nil {
		t.Fatal("Expected game service and setup manager")
	}
	if setups.GetDefault().Name != "classic" {
		t.Errorf("Expected classic default, got %s", setups.GetDefault().Name)
	}
}

func TestInitializeServices_InvalidSetupsDir(t *testing.T) {
	settings := createTestSettings(t)
	settings.SetupsDir = "/non/existent/path"

	if _, _, err := initializeServices(settings, zap.NewNop().Sugar()); err == nil {
		t.Error("Expected error for non-existent setups directory")
	}
}

func TestRunGameLoop_Win(t *testing.T) {
	svc, _, err := initializeServices(createTestSettings(t), zap.NewNop().Sugar())
	if err != nil {
		t.Fatalf("Failed to initialize services: %v", err)
	}

	var out bytes.Buffer
	in := strings.NewReader("hello\n1 3 0 3\n")
	if err := runGameLoop(context.Background(), svc, "sprint", in, &out); err != nil {
		t.Fatalf("runGameLoop failed: %v", err)
	}

	got := out.String()
	for _, want := range []string{"setup sprint", "expected: fromRow fromCol toRow toCol", "game over: black wins after 1 moves"} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected output to contain %q\n%s", want, got)
		}
	}

	sessions, err := svc.ListSessions(context.Background())
	if err != nil {
		t.Fatalf("ListSessions failed: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("Expected the session to be removed after the game, got %d", len(sessions))
	}
}

func TestRunGameLoop_Commands(t *testing.T) {
	svc, _, err := initializeServices(createTestSettings(t), zap.NewNop().Sugar())
	if err != nil {
		t.Fatalf("Failed to initialize services: %v", err)
	}

	script := strings.Join([]string{
		"2 0 3 0", // red may not move first
		"7 1 6 1", // black cat steps forward
		"history",
		"undo",
		"undo",
		"moves 7 1",
		"quit",
		"7 1 6 1", // never read
	}, "\n")

	var out bytes.Buffer
	if err := runGameLoop(context.Background(), svc, "", strings.NewReader(script), &out); err != nil {
		t.Fatalf("runGameLoop failed: %v", err)
	}

	got := out.String()
	tests := []string{
		"setup classic",
		"illegal move:",
		"black cat moves",
		"1. black cat",
		"took back",
		"cannot undo:",
		"4 moves",
		"bye",
	}
	for _, want := range tests {
		if !strings.Contains(got, want) {
			t.Errorf("Expected output to contain %q\n%s", want, got)
		}
	}
}

func TestRunGameLoop_UnknownSetup(t *testing.T) {
	svc, _, err := initializeServices(createTestSettings(t), zap.NewNop().Sugar())
	if err != nil {
		t.Fatalf("Failed to initialize services: %v", err)
	}

	var out bytes.Buffer
	if err := runGameLoop(context.Background(), svc, "nope", strings.NewReader(""), &out); err == nil {
		t.Error("Expected error for unknown setup")
	}
}

func TestApp_Show(t *testing.T) {
	var out bytes.Buffer
	app := newApp(strings.NewReader(""), &out)

	if err := app.Run(context.Background(), []string{"jungle", "show", sprintPosition}); err != nil {
		t.Fatalf("show failed: %v", err)
	}

	got := out.String()
	for _, want := range []string{"position: " + sprintPosition, "pieces: red 1, black 1", "black to move"} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected output to contain %q\n%s", want, got)
		}
	}
}

func TestApp_ShowInvalidPosition(t *testing.T) {
	var out bytes.Buffer
	app := newApp(strings.NewReader(""), &out)

	if err := app.Run(context.Background(), []string{"jungle", "show", "7/7 b"}); err == nil {
		t.Error("Expected error for a malformed position")
	}
}

func TestApp_Moves(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"whole side", []string{"jungle", "moves", sprintPosition}, "4 moves for black"},
		{"one piece", []string{"jungle", "moves", "--from", "1,3", sprintPosition}, "4 moves for black"},
		{"opponent piece", []string{"jungle", "moves", "--from", "8,0", sprintPosition}, "0 moves for black"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := newApp(strings.NewReader(""), &out).Run(context.Background(), test.args); err != nil {
				t.Fatalf("moves failed: %v", err)
			}
			if !strings.Contains(out.String(), test.expected) {
				t.Errorf("Expected %q in output\n%s", test.expected, out.String())
			}
		})
	}
}

func TestApp_Setups(t *testing.T) {
	settings := createTestSettings(t)

	var out bytes.Buffer
	args := []string{"jungle", "--env-file", "", "--setups-dir", settings.SetupsDir, "setups"}
	if err := newApp(strings.NewReader(""), &out).Run(context.Background(), args); err != nil {
		t.Fatalf("setups failed: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "classic") || !strings.Contains(got, "sprint") {
		t.Errorf("Expected classic and sprint in the listing\n%s", got)
	}
}

func TestParsePosition(t *testing.T) {
	tests := []struct {
		input    string
		expected engine.Position
		wantErr  bool
	}{
		{"1,3", engine.Position{Row: 1, Col: 3}, false},
		{" 8, 0", engine.Position{Row: 8, Col: 0}, false},
		{"1", engine.Position{}, true},
		{"a,b", engine.Position{}, true},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			got, err := parsePosition(test.input)
			if (err != nil) != test.wantErr {
				t.Fatalf("Expected error=%v, got %v", test.wantErr, err)
			}
			if got != test.expected {
				t.Errorf("Expected %v, got %v", test.expected, got)
			}
		})
	}
}
