package demo

import (
	"fmt"

	"github.com/aretw0/navstack/pkg/domain"
	"github.com/aretw0/navstack/pkg/registry"
	"github.com/mitchellh/mapstructure"
)

type colorArgs struct {
	R int32 `mapstructure:"r"`
	G int32 `mapstructure:"g"`
	B int32 `mapstructure:"b"`
}

type numberArgs struct {
	Value int `mapstructure:"value"`
}

// NewFactory returns a screen registry that rebuilds demo screens from
// their descriptors. Args decoded from JSON arrive as float64; they are
// converted weakly.
func NewFactory() *registry.Registry {
	r := registry.NewRegistry()
	r.Register(KindColor, func(in map[string]any) (domain.Screen, error) {
		var args colorArgs
		if err := decode(in, &args); err != nil {
			return nil, err
		}
		return &ColorScreen{R: args.R, G: args.G, B: args.B}, nil
	})
	r.Register(KindNumber, func(in map[string]any) (domain.Screen, error) {
		var args numberArgs
		if err := decode(in, &args); err != nil {
			return nil, err
		}
		return NewNumberScreen(args.Value), nil
	})
	return r
}

func decode(in map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(in); err != nil {
		return fmt.Errorf("invalid screen args: %w", err)
	}
	return nil
}
