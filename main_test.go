package main

import (
	"math/rand"
	"testing"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		{"cornell scene", "cornell", false},
		{"cornell-smoke scene", "cornell-smoke", false},
		{"showcase scene", "showcase", false},

		{"unknown scene", "nonexistent", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(1))
			sc, err := createScene(tt.sceneType, 1.0, rng, nil)

			if tt.expectError {
				if err == nil {
					t.Errorf("expected error for scene type %q, but got none", tt.sceneType)
				}
				if sc != nil {
					t.Errorf("expected nil scene for invalid scene type %q", tt.sceneType)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error for scene type %q: %v", tt.sceneType, err)
			}
			if sc == nil {
				t.Fatalf("expected scene for valid scene type %q, got nil", tt.sceneType)
			}
			if sc.Camera() == nil {
				t.Errorf("scene %q has no camera", tt.sceneType)
			}
			if sc.World() == nil {
				t.Errorf("scene %q has no world", tt.sceneType)
			}
		})
	}
}
