package tw

// StyleProperties represents concrete style values.
// A nil field is unset: applying it leaves the element's current value alone,
// which lets callers layer several class strings onto one element.
type StyleProperties struct {
	// Layout
	Display   *string // "block", "inline-block", "flex", "none"
	Position  *string // "static", "relative", "absolute"
	Float     *string // "left", "right", "none"
	OverflowX *string // "visible", "hidden", "scroll", "auto"
	OverflowY *string

	// Sizing
	Width        *float64 // pixels
	WidthPercent *float64 // percentage of the parent width

	// Transforms
	TranslateX        *float64 // pixels
	TranslateXPercent *float64 // percentage of the element's own width

	// Effects
	Opacity *float64
	Cursor  *string

	// Transitions
	TransitionProperty *string
	TransitionDuration *float64 // ms
	TransitionTiming   *string

	// Animations
	Animation           *string  // keyframes name, "none" clears it
	AnimationDuration   *float64 // ms
	AnimationEasing     *string
	AnimationIterations *int // 0 = infinite
}

// ComputedStyles holds the styles for each interaction state a class string targets.
type ComputedStyles struct {
	// Base styles (always apply)
	Base StyleProperties

	// Hover styles (apply while the pointer is over the element)
	Hover StyleProperties
}

// ClassMap maps static utility classes to the styles they set.
// Classes not listed here and not in arbitrary-value form are ignored.
var ClassMap = map[string]StyleProperties{
	// Display
	"block":        {Display: strPtr("block")},
	"inline-block": {Display: strPtr("inline-block")},
	"flex":         {Display: strPtr("flex")},
	"hidden":       {Display: strPtr("none")},

	// Position
	"static":   {Position: strPtr("static")},
	"relative": {Position: strPtr("relative")},
	"absolute": {Position: strPtr("absolute")},

	// Float
	"float-left":  {Float: strPtr("left")},
	"float-right": {Float: strPtr("right")},
	"float-none":  {Float: strPtr("none")},

	// Overflow
	"overflow-hidden":   {OverflowX: strPtr("hidden"), OverflowY: strPtr("hidden")},
	"overflow-visible":  {OverflowX: strPtr("visible"), OverflowY: strPtr("visible")},
	"overflow-x-hidden": {OverflowX: strPtr("hidden")},
	"overflow-y-hidden": {OverflowY: strPtr("hidden")},

	// Sizing
	"w-full": {WidthPercent: f64Ptr(100)},
	"w-1/2":  {WidthPercent: f64Ptr(50)},

	// Transforms
	"translate-x-0": {TranslateXPercent: f64Ptr(0)},

	// Opacity
	"opacity-0":   {Opacity: f64Ptr(0)},
	"opacity-50":  {Opacity: f64Ptr(0.5)},
	"opacity-80":  {Opacity: f64Ptr(0.8)},
	"opacity-100": {Opacity: f64Ptr(1)},

	// Cursor
	"cursor-pointer": {Cursor: strPtr("pointer")},
	"cursor-default": {Cursor: strPtr("default")},

	// Transitions
	"transition":           {TransitionProperty: strPtr("all"), TransitionDuration: f64Ptr(150)},
	"transition-all":       {TransitionProperty: strPtr("all")},
	"transition-none":      {TransitionProperty: strPtr("none")},
	"transition-opacity":   {TransitionProperty: strPtr("opacity")},
	"transition-transform": {TransitionProperty: strPtr("transform")},
	"duration-150":         {TransitionDuration: f64Ptr(150)},
	"duration-300":         {TransitionDuration: f64Ptr(300)},
	"duration-500":         {TransitionDuration: f64Ptr(500)},
	"duration-700":         {TransitionDuration: f64Ptr(700)},
	"duration-1000":        {TransitionDuration: f64Ptr(1000)},
	"ease-linear":          {TransitionTiming: strPtr("linear")},
	"ease-in":              {TransitionTiming: strPtr("ease-in")},
	"ease-out":             {TransitionTiming: strPtr("ease-out")},
	"ease-in-out":          {TransitionTiming: strPtr("ease-in-out")},

	// Animations
	"animate-none": {Animation: strPtr("none")},
	"animate-fade": {Animation: strPtr("fade"), AnimationDuration: f64Ptr(500)},
}

func strPtr(s string) *string    { return &s }
func f64Ptr(v float64) *float64 { return &v }
func intPtr(v int) *int          { return &v }
