// Package address_error defines the error taxonomy shared by the goip library.
// Each error kind is a distinct interface so callers can use a type switch
// rather than comparing strings, while every kind still carries an
// internationalizable key via AddressError.
package address_error

// AddressError is a type used by all library errors in order to be able to provide internationalized error messages.
type AddressError interface {
	error
	// GetKey allows users to implement their own i18n error messages.
	GetKey() string
}

// AddressStringError indicates a failure to parse address text.
type AddressStringError interface {
	AddressError
}

// AddressValueError indicates a numeric value supplied during construction
// (from bytes, ints, or segments) is out of range for the address family.
type AddressValueError interface {
	AddressError
}

// IncompatibleAddressError indicates an operation produced a result that
// cannot be represented as a Cartesian product of per-segment intervals,
// such as a non-sequential mask or an unreversible bit range.
type IncompatibleAddressError interface {
	AddressError
}

// PrefixLengthError indicates a prefix length outside [0, bit count].
type PrefixLengthError interface {
	AddressError
}

// NetworkMismatchError indicates two values governed by different
// process-wide network configurations were used together.
type NetworkMismatchError interface {
	AddressError
}

// AddressConversionError indicates a conversion between address families
// was requested but is not possible under the selected converter.
type AddressConversionError interface {
	AddressError
}

// HostNameError indicates a failure originating from host identifier text
// that wraps an address error.
type HostNameError interface {
	AddressError
	// GetAddrError returns the nested address error, or nil if none.
	GetAddrError() AddressError
}

// MergedError carries more than one underlying AddressError.
type MergedError interface {
	AddressError
	GetMerged() []AddressError
}
