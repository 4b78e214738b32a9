package main

import "testing"

func TestStrEnv_UsesEnv(t *testing.T) {
	t.Setenv("PAWTRAIL_ADDR", ":9090")
	if got := strEnv("PAWTRAIL_ADDR", ":8080"); got != ":9090" {
		t.Fatalf("strEnv()=%q want %q", got, ":9090")
	}
}

func TestStrEnv_Fallback(t *testing.T) {
	t.Setenv("PAWTRAIL_ADDR", "")
	if got := strEnv("PAWTRAIL_ADDR", ":8080"); got != ":8080" {
		t.Fatalf("strEnv()=%q want %q", got, ":8080")
	}
}

func TestStrEnv_TrimsWhitespace(t *testing.T) {
	t.Setenv("PAWTRAIL_SAVE_FILE", "  ./saves/alt.json  ")
	if got := strEnv("PAWTRAIL_SAVE_FILE", "./saves/puzzle_progress.json"); got != "./saves/alt.json" {
		t.Fatalf("strEnv()=%q want %q", got, "./saves/alt.json")
	}
}
