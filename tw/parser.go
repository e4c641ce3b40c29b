// Package tw resolves Tailwind-style utility class strings into style values.
//
// Only the utilities an element tree needs for sliding and fading content are
// understood. Arbitrary values such as w-[25%], duration-[500ms],
// -translate-x-[50%] and animate-[fade_1s_ease-in] are parsed at runtime.
package tw

import (
	"fmt"
	"strconv"
	"strings"
)

// State represents element interaction state
type State int

const (
	StateDefault State = iota
	StateHover
)

// ParsedClass represents a class with its variant modifiers
type ParsedClass struct {
	State          State
	Negative       bool // leading "-" as in -translate-x-[25%]
	Unsupported    bool // variant this package does not resolve (dark:, md:, ...)
	BaseClass      string
	ArbitraryValue *ArbitraryValue
}

// ArbitraryValue represents a runtime-parsed arbitrary value
type ArbitraryValue struct {
	Property string // e.g. "w", "duration", "translate-x"
	Value    string // e.g. "25%", "500ms", "-50%"
}

// ParseClasses parses a class string and returns computed styles.
// Example: "float-left w-[25%] duration-[500ms] hover:opacity-80"
func ParseClasses(classStr string) ComputedStyles {
	var computed ComputedStyles

	for _, class := range strings.Fields(classStr) {
		parsed := parseClass(class)
		if parsed.Unsupported {
			continue
		}

		var partial StyleProperties
		if parsed.ArbitraryValue != nil {
			partial = parseArbitraryValue(parsed.ArbitraryValue)
		} else {
			var ok bool
			partial, ok = ClassMap[parsed.BaseClass]
			if !ok {
				// Unknown class, silently ignore (like Tailwind CSS)
				continue
			}
		}
		if parsed.Negative {
			partial = negate(partial)
		}

		target := &computed.Base
		if parsed.State == StateHover {
			target = &computed.Hover
		}
		target.Merge(partial)
	}

	return computed
}

// Parse is shorthand for ParseClasses(classStr).Base.
func Parse(classStr string) StyleProperties {
	return ParseClasses(classStr).Base
}

// parseClass splits a class into variant modifiers and base utility
// "hover:opacity-80" → ParsedClass{State: Hover, BaseClass: "opacity-80"}
// "-translate-x-[25%]" → ParsedClass{Negative: true, ArbitraryValue: {"translate-x", "25%"}}
func parseClass(class string) ParsedClass {
	parts := strings.Split(class, ":")

	pc := ParsedClass{
		State:     StateDefault,
		BaseClass: parts[len(parts)-1],
	}

	for _, variant := range parts[:len(parts)-1] {
		switch variant {
		case "hover":
			pc.State = StateHover
		default:
			pc.Unsupported = true
		}
	}

	if strings.HasPrefix(pc.BaseClass, "-") {
		pc.Negative = true
		pc.BaseClass = pc.BaseClass[1:]
	}

	if strings.Contains(pc.BaseClass, "[") && strings.HasSuffix(pc.BaseClass, "]") {
		pc.ArbitraryValue = extractArbitraryValue(pc.BaseClass)
		pc.BaseClass = ""
	}

	return pc
}

// extractArbitraryValue parses arbitrary value syntax
// "w-[33%]" → ArbitraryValue{Property: "w", Value: "33%"}
func extractArbitraryValue(class string) *ArbitraryValue {
	bracketIdx := strings.Index(class, "[")
	if bracketIdx == -1 {
		return nil
	}

	return &ArbitraryValue{
		Property: strings.TrimSuffix(class[:bracketIdx], "-"),
		Value:    strings.TrimSuffix(class[bracketIdx+1:], "]"),
	}
}

// parseArbitraryValue converts arbitrary value to StyleProperties at runtime
func parseArbitraryValue(arb *ArbitraryValue) StyleProperties {
	var partial StyleProperties

	switch arb.Property {
	case "w":
		if val, percent := parseDimension(arb.Value); val != nil {
			if percent {
				partial.WidthPercent = val
			} else {
				partial.Width = val
			}
		}

	case "translate-x":
		if val, percent := parseDimension(arb.Value); val != nil {
			if percent {
				partial.TranslateXPercent = val
			} else {
				partial.TranslateX = val
			}
		}

	case "opacity":
		partial.Opacity = parseFloat(arb.Value)

	// duration-[500ms] sets both transition and animation duration, since the
	// same element may fade and slide with one configured speed.
	case "duration":
		if ms := parseDuration(arb.Value); ms != nil {
			partial.TransitionDuration = ms
			partial.AnimationDuration = ms
		}

	case "ease":
		if isValidEasing(arb.Value) {
			partial.TransitionTiming = strPtr(arb.Value)
		}

	// animate-[name_duration_easing_iterations]
	case "animate":
		parseAnimationArbitrary(arb.Value, &partial)
	}

	return partial
}

// parseAnimationArbitrary parses animation arbitrary value syntax
// Format: name_duration_easing_iterations (underscore-separated)
// Examples:
//
//	fade_500ms          -> fade animation at 500ms duration
//	fade_1s_ease-out    -> fade with 1s duration and ease-out easing
//	none_500ms          -> no animation, duration kept for later use
func parseAnimationArbitrary(value string, partial *StyleProperties) {
	parts := strings.Split(value, "_")
	if parts[0] == "" {
		return
	}
	partial.Animation = strPtr(parts[0])

	for _, part := range parts[1:] {
		if part == "" {
			continue
		}
		if ms := parseDuration(part); ms != nil {
			partial.AnimationDuration = ms
			continue
		}
		if part == "infinite" {
			partial.AnimationIterations = intPtr(0)
			continue
		}
		if n, err := strconv.Atoi(part); err == nil {
			partial.AnimationIterations = &n
			continue
		}
		if isValidEasing(part) {
			partial.AnimationEasing = strPtr(part)
		}
	}
}

// parseDuration parses duration strings like "500ms", "1s", "1.5s" into ms
func parseDuration(value string) *float64 {
	switch {
	case strings.HasSuffix(value, "ms"):
		return parseFloat(strings.TrimSuffix(value, "ms"))
	case strings.HasSuffix(value, "s"):
		if sec := parseFloat(strings.TrimSuffix(value, "s")); sec != nil {
			return f64Ptr(*sec * 1000)
		}
	}
	return nil
}

func isValidEasing(value string) bool {
	switch value {
	case "linear", "ease", "ease-in", "ease-out", "ease-in-out":
		return true
	}
	return false
}

// parseDimension parses px, % and rem values. The second result reports
// whether the value is a percentage.
func parseDimension(value string) (*float64, bool) {
	value = strings.TrimSpace(value)

	switch {
	case strings.HasSuffix(value, "%"):
		return parseFloat(strings.TrimSuffix(value, "%")), true
	case strings.HasSuffix(value, "px"):
		return parseFloat(strings.TrimSuffix(value, "px")), false
	case strings.HasSuffix(value, "rem"):
		if v := parseFloat(strings.TrimSuffix(value, "rem")); v != nil {
			return f64Ptr(*v * 16), false
		}
		return nil, false
	default:
		return parseFloat(value), false
	}
}

func parseFloat(value string) *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return nil
	}
	return &v
}

func negate(p StyleProperties) StyleProperties {
	if p.TranslateX != nil {
		p.TranslateX = f64Ptr(-*p.TranslateX)
	}
	if p.TranslateXPercent != nil {
		p.TranslateXPercent = f64Ptr(-*p.TranslateXPercent)
	}
	return p
}

// Merge merges p into these StyleProperties.
// Later values override earlier ones (last class wins).
func (s *StyleProperties) Merge(p StyleProperties) {
	if p.Display != nil {
		s.Display = p.Display
	}
	if p.Position != nil {
		s.Position = p.Position
	}
	if p.Float != nil {
		s.Float = p.Float
	}
	if p.OverflowX != nil {
		s.OverflowX = p.OverflowX
	}
	if p.OverflowY != nil {
		s.OverflowY = p.OverflowY
	}
	if p.Width != nil {
		s.Width = p.Width
		s.WidthPercent = nil
	}
	if p.WidthPercent != nil {
		s.WidthPercent = p.WidthPercent
		s.Width = nil
	}
	if p.TranslateX != nil {
		s.TranslateX = p.TranslateX
		s.TranslateXPercent = nil
	}
	if p.TranslateXPercent != nil {
		s.TranslateXPercent = p.TranslateXPercent
		s.TranslateX = nil
	}
	if p.Opacity != nil {
		s.Opacity = p.Opacity
	}
	if p.Cursor != nil {
		s.Cursor = p.Cursor
	}
	if p.TransitionProperty != nil {
		s.TransitionProperty = p.TransitionProperty
	}
	if p.TransitionDuration != nil {
		s.TransitionDuration = p.TransitionDuration
	}
	if p.TransitionTiming != nil {
		s.TransitionTiming = p.TransitionTiming
	}
	if p.Animation != nil {
		s.Animation = p.Animation
	}
	if p.AnimationDuration != nil {
		s.AnimationDuration = p.AnimationDuration
	}
	if p.AnimationEasing != nil {
		s.AnimationEasing = p.AnimationEasing
	}
	if p.AnimationIterations != nil {
		s.AnimationIterations = p.AnimationIterations
	}
}

// Declaration is one CSS property/value pair.
type Declaration struct {
	Property string
	Value    string
}

// CSS renders the set fields as inline CSS declarations in a stable order.
func (s StyleProperties) CSS() []Declaration {
	var decls []Declaration
	add := func(prop, value string) {
		decls = append(decls, Declaration{Property: prop, Value: value})
	}

	if s.Display != nil {
		add("display", *s.Display)
	}
	if s.Position != nil {
		add("position", *s.Position)
	}
	if s.Float != nil {
		add("float", *s.Float)
	}
	if s.OverflowX != nil {
		add("overflow-x", *s.OverflowX)
	}
	if s.OverflowY != nil {
		add("overflow-y", *s.OverflowY)
	}
	if s.Width != nil {
		add("width", FormatNumber(*s.Width)+"px")
	}
	if s.WidthPercent != nil {
		add("width", FormatNumber(*s.WidthPercent)+"%")
	}
	if s.TranslateX != nil {
		add("transform", fmt.Sprintf("translateX(%spx)", FormatNumber(*s.TranslateX)))
	}
	if s.TranslateXPercent != nil {
		add("transform", fmt.Sprintf("translateX(%s%%)", FormatNumber(*s.TranslateXPercent)))
	}
	if s.Opacity != nil {
		add("opacity", FormatNumber(*s.Opacity))
	}
	if s.Cursor != nil {
		add("cursor", *s.Cursor)
	}
	if s.TransitionProperty != nil {
		add("transition-property", *s.TransitionProperty)
	}
	if s.TransitionDuration != nil {
		add("transition-duration", FormatNumber(*s.TransitionDuration)+"ms")
	}
	if s.TransitionTiming != nil {
		add("transition-timing-function", *s.TransitionTiming)
	}
	if s.Animation != nil {
		add("animation-name", *s.Animation)
	}
	if s.AnimationDuration != nil {
		add("animation-duration", FormatNumber(*s.AnimationDuration)+"ms")
	}
	if s.AnimationEasing != nil {
		add("animation-timing-function", *s.AnimationEasing)
	}
	if s.AnimationIterations != nil {
		if *s.AnimationIterations == 0 {
			add("animation-iteration-count", "infinite")
		} else {
			add("animation-iteration-count", strconv.Itoa(*s.AnimationIterations))
		}
	}

	return decls
}

// FormatNumber formats v without trailing zeros, as used in class values.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
