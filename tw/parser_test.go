package tw

import "testing"

func TestParseClassesWithVariants(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		validate func(*testing.T, ComputedStyles)
	}{
		{
			name:  "static utilities",
			input: "relative overflow-hidden float-left",
			validate: func(t *testing.T, s ComputedStyles) {
				if s.Base.Position == nil || *s.Base.Position != "relative" {
					t.Errorf("expected Position=relative, got %v", s.Base.Position)
				}
				if s.Base.OverflowX == nil || *s.Base.OverflowX != "hidden" {
					t.Errorf("expected OverflowX=hidden, got %v", s.Base.OverflowX)
				}
				if s.Base.OverflowY == nil || *s.Base.OverflowY != "hidden" {
					t.Errorf("expected OverflowY=hidden, got %v", s.Base.OverflowY)
				}
				if s.Base.Float == nil || *s.Base.Float != "left" {
					t.Errorf("expected Float=left, got %v", s.Base.Float)
				}
			},
		},
		{
			name:  "hidden then block, last class wins",
			input: "hidden block",
			validate: func(t *testing.T, s ComputedStyles) {
				if s.Base.Display == nil || *s.Base.Display != "block" {
					t.Errorf("expected Display=block, got %v", s.Base.Display)
				}
			},
		},
		{
			name:  "hover variant",
			input: "opacity-50 hover:opacity-100 cursor-pointer",
			validate: func(t *testing.T, s ComputedStyles) {
				if s.Base.Opacity == nil || *s.Base.Opacity != 0.5 {
					t.Errorf("expected Base.Opacity=0.5, got %v", s.Base.Opacity)
				}
				if s.Hover.Opacity == nil || *s.Hover.Opacity != 1 {
					t.Errorf("expected Hover.Opacity=1, got %v", s.Hover.Opacity)
				}
				if s.Hover.Cursor != nil {
					t.Error("cursor-pointer should not land in Hover")
				}
			},
		},
		{
			name:  "unsupported variants are ignored",
			input: "block dark:hidden md:hidden",
			validate: func(t *testing.T, s ComputedStyles) {
				if s.Base.Display == nil || *s.Base.Display != "block" {
					t.Errorf("expected Display=block, got %v", s.Base.Display)
				}
			},
		},
		{
			name:  "unknown classes are ignored",
			input: "slider-track w-full",
			validate: func(t *testing.T, s ComputedStyles) {
				if s.Base.WidthPercent == nil || *s.Base.WidthPercent != 100 {
					t.Errorf("expected WidthPercent=100, got %v", s.Base.WidthPercent)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, ParseClasses(tt.input))
		})
	}
}

func TestArbitraryValues(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		validate func(*testing.T, StyleProperties)
	}{
		{
			name:  "percent width",
			input: "w-[25%]",
			validate: func(t *testing.T, s StyleProperties) {
				if s.WidthPercent == nil || *s.WidthPercent != 25 {
					t.Errorf("expected WidthPercent=25, got %v", s.WidthPercent)
				}
				if s.Width != nil {
					t.Error("expected pixel Width to stay unset")
				}
			},
		},
		{
			name:  "pixel width",
			input: "w-[320px]",
			validate: func(t *testing.T, s StyleProperties) {
				if s.Width == nil || *s.Width != 320 {
					t.Errorf("expected Width=320, got %v", s.Width)
				}
			},
		},
		{
			name:  "duration in ms sets transition and animation",
			input: "duration-[750ms]",
			validate: func(t *testing.T, s StyleProperties) {
				if s.TransitionDuration == nil || *s.TransitionDuration != 750 {
					t.Errorf("expected TransitionDuration=750, got %v", s.TransitionDuration)
				}
				if s.AnimationDuration == nil || *s.AnimationDuration != 750 {
					t.Errorf("expected AnimationDuration=750, got %v", s.AnimationDuration)
				}
			},
		},
		{
			name:  "duration in seconds",
			input: "duration-[1.5s]",
			validate: func(t *testing.T, s StyleProperties) {
				if s.TransitionDuration == nil || *s.TransitionDuration != 1500 {
					t.Errorf("expected TransitionDuration=1500, got %v", s.TransitionDuration)
				}
			},
		},
		{
			name:  "negative translate prefix",
			input: "-translate-x-[50%]",
			validate: func(t *testing.T, s StyleProperties) {
				if s.TranslateXPercent == nil || *s.TranslateXPercent != -50 {
					t.Errorf("expected TranslateXPercent=-50, got %v", s.TranslateXPercent)
				}
			},
		},
		{
			name:  "negative translate value",
			input: "translate-x-[-25%]",
			validate: func(t *testing.T, s StyleProperties) {
				if s.TranslateXPercent == nil || *s.TranslateXPercent != -25 {
					t.Errorf("expected TranslateXPercent=-25, got %v", s.TranslateXPercent)
				}
			},
		},
		{
			name:  "animation with duration easing and iterations",
			input: "animate-[fade_1s_ease-out_infinite]",
			validate: func(t *testing.T, s StyleProperties) {
				if s.Animation == nil || *s.Animation != "fade" {
					t.Errorf("expected Animation=fade, got %v", s.Animation)
				}
				if s.AnimationDuration == nil || *s.AnimationDuration != 1000 {
					t.Errorf("expected AnimationDuration=1000, got %v", s.AnimationDuration)
				}
				if s.AnimationEasing == nil || *s.AnimationEasing != "ease-out" {
					t.Errorf("expected AnimationEasing=ease-out, got %v", s.AnimationEasing)
				}
				if s.AnimationIterations == nil || *s.AnimationIterations != 0 {
					t.Errorf("expected AnimationIterations=0, got %v", s.AnimationIterations)
				}
			},
		},
		{
			name:  "malformed values are dropped",
			input: "w-[abc] duration-[fast]",
			validate: func(t *testing.T, s StyleProperties) {
				if s.WidthPercent != nil || s.Width != nil {
					t.Error("expected width to stay unset")
				}
				if s.TransitionDuration != nil {
					t.Error("expected duration to stay unset")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, Parse(tt.input))
		})
	}
}

func TestMergeKeepsUnsetFields(t *testing.T) {
	s := Parse("float-left w-[25%] duration-[500ms]")
	s.Merge(Parse("hidden"))

	if s.Float == nil || *s.Float != "left" {
		t.Errorf("expected Float to survive merge, got %v", s.Float)
	}
	if s.Display == nil || *s.Display != "none" {
		t.Errorf("expected Display=none, got %v", s.Display)
	}

	s.Merge(Parse("w-[10px]"))
	if s.WidthPercent != nil {
		t.Error("pixel width should clear percent width")
	}
}

func TestCSS(t *testing.T) {
	s := Parse("block w-[33.5%] -translate-x-[25%] transition-all duration-[500ms] animate-[fade]")

	want := []Declaration{
		{"display", "block"},
		{"width", "33.5%"},
		{"transform", "translateX(-25%)"},
		{"transition-property", "all"},
		{"transition-duration", "500ms"},
		{"animation-name", "fade"},
		{"animation-duration", "500ms"},
	}

	got := s.CSS()
	if len(got) != len(want) {
		t.Fatalf("expected %d declarations, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("declaration %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestClassMapCompleteness(t *testing.T) {
	categories := map[string][]string{
		"layout":     {"block", "hidden", "flex", "inline-block"},
		"position":   {"relative", "absolute"},
		"float":      {"float-left", "float-none"},
		"overflow":   {"overflow-hidden", "overflow-x-hidden"},
		"transition": {"transition-all", "duration-500", "ease-in-out"},
		"animation":  {"animate-none", "animate-fade"},
	}

	for category, classes := range categories {
		for _, class := range classes {
			if _, ok := ClassMap[class]; !ok {
				t.Errorf("Category %s: missing class %s", category, class)
			}
		}
	}
}

func BenchmarkParseClasses(b *testing.B) {
	input := "float-left w-[25%] transition-all duration-[500ms] animate-[fade_500ms] hover:opacity-80"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ParseClasses(input)
	}
}
