package distress

import (
	"reflect"
	"testing"
)

func TestClassifyMatchesCrisisPhrase(t *testing.T) {
	result := Classify("I want to end it all")
	if !result.IsDistress {
		t.Fatal("expected distress for crisis phrase")
	}
	if result.SafetyMessage == "" {
		t.Fatal("expected non-empty safety message")
	}
	if len(result.Resources) == 0 {
		t.Fatal("expected non-empty resource list")
	}
}

func TestClassifyPassesNeutralMessage(t *testing.T) {
	result := Classify("I am stressed about placements")
	if result.IsDistress {
		t.Fatal("expected no distress for neutral message")
	}
	if result.SafetyMessage != "" || result.Resources != nil {
		t.Fatal("expected no safety payload for neutral message")
	}
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	result := Classify("Everything feels HOPELESS right now")
	if !result.IsDistress {
		t.Fatal("expected distress regardless of input casing")
	}
}

func TestClassifyMatchesSubstring(t *testing.T) {
	result := Classify("honestly it feels like nobody cares anymore")
	if !result.IsDistress {
		t.Fatal("expected distress for phrase embedded in longer text")
	}
}

func TestClassifyEmptyMessage(t *testing.T) {
	result := Classify("")
	if result.IsDistress {
		t.Fatal("expected no distress for empty message")
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	first := Classify("I feel worthless")
	second := Classify("I feel worthless")
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results, got %+v then %+v", first, second)
	}
}
