package imcore

// Option configures a widget call.
type Option func(*options)

// options holds widget configuration keyed by option name.
type options struct {
	values map[string]any
}

// OptKey is a typed key for widget options.
//
//	var OptGlow = imcore.NewOptKey("glow", false)
//
//	ctx.Button("Go", imcore.WithOpt(OptGlow, true))
//
//	glow := imcore.ApplyAndGet(opts, OptGlow) // inside a custom widget
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name.
func (k OptKey[T]) Name() string { return k.name }

// Default returns the value used when the option is not set.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.values == nil {
			o.values = make(map[string]any, 4)
		}
		o.values[key.name] = value
	}
}

// GetOpt returns the option value, or the key's default when unset or of
// the wrong type.
func GetOpt[T any](o options, key OptKey[T]) T {
	v, ok := o.values[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// HasOpt reports whether the option was set explicitly.
func HasOpt[T any](o options, key OptKey[T]) bool {
	_, ok := o.values[key.name]
	return ok
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ApplyAndGet applies opts and returns a single value. Use it from custom
// widgets in other packages.
func ApplyAndGet[T any](opts []Option, key OptKey[T]) T {
	return GetOpt(applyOptions(opts), key)
}

// ApplyAndCheck returns the option value and whether it was set.
func ApplyAndCheck[T any](opts []Option, key OptKey[T]) (T, bool) {
	o := applyOptions(opts)
	return GetOpt(o, key), HasOpt(o, key)
}

// RangeValue holds min/max bounds for drag widgets.
type RangeValue struct {
	Min, Max float32
	HasRange bool
}

// Built-in option keys.
var (
	OptID       = NewOptKey("id", "") // Identity override; the label stays visible
	OptDisabled = NewOptKey("disabled", false)
	OptWidth    = NewOptKey[float32]("width", 0)
	OptHeight   = NewOptKey[float32]("height", 0)
	OptTooltip  = NewOptKey("tooltip", "") // Shown after HoverTooltipDelay

	OptFormat    = NewOptKey("format", "%.3f")
	OptRange     = NewOptKey("range", RangeValue{})
	OptDragSpeed = NewOptKey[float32]("dragSpeed", 1)
	OptStep      = NewOptKey[float32]("step", 0) // Snap slider values; 0 is continuous

	OptOverlay = NewOptKey("overlay", "") // Text centered over a plot
	OptFilter  = NewOptKey("filter", "")  // Case-insensitive substring filter for list boxes

	OptDefaultOpen = NewOptKey("defaultOpen", false)
	OptLeaf        = NewOptKey("leaf", false) // Tree node without children

	OptMaxLength   = NewOptKey("maxLength", 0) // In runes; 0 is unlimited
	OptPassword    = NewOptKey("password", false)
	OptHint        = NewOptKey("hint", "")
	OptReadOnly    = NewOptKey("readOnly", false)
	OptEnterReturn = NewOptKey("enterReturnsTrue", false)
)

// WithID overrides the widget identity.
func WithID(id string) Option { return WithOpt(OptID, id) }

// WithWidth sets an explicit width.
func WithWidth(w float32) Option { return WithOpt(OptWidth, w) }

// WithHeight sets an explicit height.
func WithHeight(h float32) Option { return WithOpt(OptHeight, h) }

// WithSize sets an explicit width and height.
func WithSize(w, h float32) Option {
	return func(o *options) {
		WithOpt(OptWidth, w)(o)
		WithOpt(OptHeight, h)(o)
	}
}

// Disabled renders the widget dimmed and ignores input.
func Disabled(disabled bool) Option { return WithOpt(OptDisabled, disabled) }

// WithTooltip attaches a hover tooltip.
func WithTooltip(text string) Option { return WithOpt(OptTooltip, text) }

// WithFormat sets the printf format used to display a value.
func WithFormat(format string) Option { return WithOpt(OptFormat, format) }

// WithRange clamps a drag widget.
func WithRange(minVal, maxVal float32) Option {
	return WithOpt(OptRange, RangeValue{Min: minVal, Max: maxVal, HasRange: true})
}

// WithDragSpeed sets units per pixel of drag.
func WithDragSpeed(speed float32) Option { return WithOpt(OptDragSpeed, speed) }

// WithFilter hides list box items not containing filter.
func WithFilter(filter string) Option { return WithOpt(OptFilter, filter) }

// WithOverlay sets the text drawn over a plot.
func WithOverlay(text string) Option { return WithOpt(OptOverlay, text) }

// WithStep snaps slider values to multiples of step from the minimum.
func WithStep(step float32) Option { return WithOpt(OptStep, step) }

// DefaultOpen starts a tree node or header expanded.
func DefaultOpen() Option { return WithOpt(OptDefaultOpen, true) }

// WithMaxLength limits an input field's length in runes.
func WithMaxLength(n int) Option { return WithOpt(OptMaxLength, n) }

// WithHint shows placeholder text in an empty input field.
func WithHint(hint string) Option { return WithOpt(OptHint, hint) }

// Password masks an input field's contents.
func Password() Option { return WithOpt(OptPassword, true) }

// ReadOnly allows selecting and copying but not editing.
func ReadOnly() Option { return WithOpt(OptReadOnly, true) }

// EnterReturnsTrue makes InputText return true only when Enter is pressed.
func EnterReturnsTrue() Option { return WithOpt(OptEnterReturn, true) }

// itemID resolves a widget's ID from its label or an OptID override.
func (ctx *Context) itemID(label string, o options) ID {
	if id := GetOpt(o, OptID); id != "" {
		return ctx.GetID(id)
	}
	return ctx.GetID(label)
}
