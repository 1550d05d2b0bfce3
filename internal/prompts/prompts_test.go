package prompts

import (
	"strings"
	"testing"
)

func TestInstructionsNeverEmpty(t *testing.T) {
	contexts := []ContextKey{"", "unknown", "TEAM"}
	for _, o := range Contexts() {
		contexts = append(contexts, o.Key)
	}
	for _, k := range contexts {
		if got := ContextInstruction(k); strings.TrimSpace(got) == "" {
			t.Errorf("ContextInstruction(%q) is empty", k)
		}
	}

	personas := []PersonaKey{"", "pirate", "Zen"}
	for _, o := range Personas() {
		personas = append(personas, o.Key)
	}
	for _, k := range personas {
		if got := PersonaInstruction(k); strings.TrimSpace(got) == "" {
			t.Errorf("PersonaInstruction(%q) is empty", k)
		}
	}
}

func TestUnknownKeysFallBackToDefault(t *testing.T) {
	if got, want := ContextInstruction("karaoke"), ContextInstruction(ContextDefault); got != want {
		t.Errorf("ContextInstruction(karaoke) = %q, want %q", got, want)
	}
	if got, want := PersonaInstruction("pirate"), PersonaInstruction(PersonaDefault); got != want {
		t.Errorf("PersonaInstruction(pirate) = %q, want %q", got, want)
	}
}

func TestComposeOrder(t *testing.T) {
	for _, k := range Kinds() {
		for _, c := range Contexts() {
			for _, p := range Personas() {
				got := Compose(k.Kind, c.Key, p.Key)

				pi := strings.Index(got, PersonaInstruction(p.Key))
				ci := strings.Index(got, ContextInstruction(c.Key))
				ti := strings.Index(got, TaskInstruction(k.Kind))
				if pi != 0 {
					t.Fatalf("Compose(%s,%s,%s): persona sentence at %d, want 0", k.Kind, c.Key, p.Key, pi)
				}
				if !(pi < ci && ci < ti) {
					t.Fatalf("Compose(%s,%s,%s): order persona=%d context=%d task=%d", k.Kind, c.Key, p.Key, pi, ci, ti)
				}
				if !strings.HasSuffix(got, TaskInstruction(k.Kind)) {
					t.Fatalf("Compose(%s,%s,%s) does not end with the task sentence", k.Kind, c.Key, p.Key)
				}
			}
		}
	}
}

func TestComposeClassroomProfessorJoke(t *testing.T) {
	want := "Respond in an educational, scholarly tone like a professor. Be informative, articulate, and use a more academic style. You may include interesting context or background information. This is for a classroom setting with students. Keep it educational, age-appropriate, and engaging for learning. Tell me a light-hearted, clean joke that would make people laugh. Keep it appropriate for the setting."

	got := Compose(KindJoke, ContextClassroom, PersonaProfessor)
	if got != want {
		t.Errorf("Compose() =\n%q\nwant\n%q", got, want)
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"icebreaker", KindIcebreaker, false},
		{"  Fact ", KindFact, false},
		{"JOKE", KindJoke, false},
		{"weather", KindWeather, false},
		{"poem", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseKind(%q) expected error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseKind(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseKind(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTaskInstructionPanicsOnUnknownKind(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("TaskInstruction(unknown) did not panic")
		}
	}()
	TaskInstruction("poem")
}

func TestOptionListsAreCopies(t *testing.T) {
	c := Contexts()
	c[0].Label = "changed"
	if Contexts()[0].Label == "changed" {
		t.Error("Contexts() exposes the backing slice")
	}
	if len(Kinds()) != 4 {
		t.Errorf("len(Kinds()) = %d, want 4", len(Kinds()))
	}
}
