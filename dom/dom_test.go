package dom

import "testing"

func TestEventType(t *testing.T) {
	tests := []struct {
		typ     EventType
		name    string
		bubbles bool
	}{
		{EventClick, "click", true},
		{EventTouchStart, "touchstart", true},
		{EventTouchEnd, "touchend", true},
		{EventMouseEnter, "mouseenter", false},
		{EventMouseLeave, "mouseleave", false},
		{EventType(0), "unknown", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.typ.Bubbles(); got != tt.bubbles {
				t.Errorf("Bubbles() = %v, want %v", got, tt.bubbles)
			}
		})
	}
}
