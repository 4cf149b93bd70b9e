package machine

import (
	"github.com/blocto/solana-go-sdk/common"

	"github.com/forestrie/go-candymachine/rent"
	"github.com/forestrie/go-candymachine/tokens"
)

// ProgramID is the address of the candy machine program. Collection PDAs are
// derived under it.
var ProgramID = common.PublicKeyFromString("cndy3Z4yapfJBmL3ShUp5exZKqR3z33thTzeNMm2gRZ")

// Options configures an Initializer or a Withdrawer. Implementations ignore
// options that they don't use.
type Options struct {
	rent      rent.Calculator
	validator PaymentMintValidator
	programID common.PublicKey
}

type Option func(*Options)

// NewOptions returns the defaults with opts applied.
func NewOptions(opts ...Option) Options {
	options := Options{
		rent:      rent.DefaultRent,
		validator: tokens.NewValidator(),
		programID: ProgramID,
	}
	for _, o := range opts {
		o(&options)
	}
	return options
}

// WithRent sets how the minimum balance for an account size is found.
func WithRent(calc rent.Calculator) Option {
	return func(opts *Options) {
		opts.rent = calc
	}
}

// WithTokenValidator replaces the payment mint check.
func WithTokenValidator(v PaymentMintValidator) Option {
	return func(opts *Options) {
		opts.validator = v
	}
}

func WithProgramID(id common.PublicKey) Option {
	return func(opts *Options) {
		opts.programID = id
	}
}
