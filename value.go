package multiparse

import "errors"

var errNilValue = errors.New("multiparse: store into nil *Value")

// Value holds an integer set from text. It implements flag.Getter,
// encoding.TextMarshaler and encoding.TextUnmarshaler, so radix-prefixed
// integers can be accepted on the command line and in configuration files.
//
//	var mask uint32
//	flag.Var(multiparse.NewValue(&mask, 0xff), "mask", "bit mask")
//
// The zero Value is ready to use and stores into its own variable.
type Value[T Integer] struct {
	p *T
}

// NewValue returns a Value that stores into p, after setting *p to def.
func NewValue[T Integer](p *T, def T) *Value[T] {
	*p = def
	return &Value[T]{p: p}
}

// Set parses s and stores the result. The stored value is left unchanged
// if s cannot be parsed.
func (v *Value[T]) Set(s string) error {
	n, err := parse[T]("Set", s)
	if err != nil {
		return err
	}
	return v.store(n)
}

// Get returns the stored value as a T.
func (v *Value[T]) Get() any {
	return v.load()
}

// String returns the stored value in decimal.
func (v *Value[T]) String() string {
	return Format(v.load(), Decimal)
}

// UnmarshalText parses text like Set.
func (v *Value[T]) UnmarshalText(text []byte) error {
	n, err := parse[T]("UnmarshalText", string(text))
	if err != nil {
		return err
	}
	return v.store(n)
}

// MarshalText returns the stored value in decimal.
func (v *Value[T]) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *Value[T]) load() T {
	if v == nil || v.p == nil {
		return 0
	}
	return *v.p
}

// store reports an error for a nil receiver, which load treats as zero.
func (v *Value[T]) store(n T) error {
	if v == nil {
		return errNilValue
	}
	if v.p == nil {
		v.p = new(T)
	}
	*v.p = n
	return nil
}
