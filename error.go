package goip

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/LucasZ876/IPAddress-sub000/address_error"
)

// addressErrorBase is embedded by every concrete error kind in this package.
// It supplies the message-key lookup and optional nested address text.
type addressErrorBase struct {
	key string // key into the resource table, see ip_address_resources.go
	str string // optional string with the offending address or value
}

func (a *addressErrorBase) Error() string {
	return getStr(a.str) + lookupStr(a.key)
}

// GetKey can be used to internationalize error strings in the goip library.
// The list of keys and their English translations are listed in ip_address_resources.go.
func (a *addressErrorBase) GetKey() string {
	return a.key
}

func getStr(str string) (res string) {
	if len(str) > 0 {
		res = str + " "
	}
	return
}

type addressStringError struct {
	addressErrorBase
	index int // byte index in the parsed string where the error was detected, or -1
}

func (a *addressStringError) Error() string {
	if a.index >= 0 {
		return getStr(a.str) + lookupStr(a.key) + " " + strconv.Itoa(a.index)
	}
	return a.addressErrorBase.Error()
}

var _ address_error.AddressStringError = &addressStringError{}

func newAddressStringError(key, str string) address_error.AddressStringError {
	return &addressStringError{addressErrorBase: addressErrorBase{key: key, str: str}, index: -1}
}

func newAddressStringIndexError(key, str string, index int) address_error.AddressStringError {
	return &addressStringError{addressErrorBase: addressErrorBase{key: key, str: str}, index: index}
}

type addressValueError struct {
	addressErrorBase
	val int64
}

var _ address_error.AddressValueError = &addressValueError{}

func newAddressValueError(key string, val int64) address_error.AddressValueError {
	return &addressValueError{addressErrorBase: addressErrorBase{key: key}, val: val}
}

type incompatibleAddressError struct {
	addressErrorBase
}

var _ address_error.IncompatibleAddressError = &incompatibleAddressError{}

func newIncompatibleAddressError(key, str string) address_error.IncompatibleAddressError {
	return &incompatibleAddressError{addressErrorBase{key: key, str: str}}
}

type prefixLengthError struct {
	addressErrorBase
	prefixLength int
}

var _ address_error.PrefixLengthError = &prefixLengthError{}

func newPrefixLengthError(key string, prefixLength int) address_error.PrefixLengthError {
	return &prefixLengthError{addressErrorBase: addressErrorBase{key: key}, prefixLength: prefixLength}
}

type networkMismatchError struct {
	addressErrorBase
}

var _ address_error.NetworkMismatchError = &networkMismatchError{}

func newNetworkMismatchError(key string) address_error.NetworkMismatchError {
	return &networkMismatchError{addressErrorBase{key: key}}
}

type addressConversionError struct {
	addressErrorBase
}

var _ address_error.AddressConversionError = &addressConversionError{}

func newAddressConversionError(key string) address_error.AddressConversionError {
	return &addressConversionError{addressErrorBase{key: key}}
}

type mergedError struct {
	merged []address_error.AddressError
	str    string
}

var _ address_error.MergedError = &mergedError{}

func (m *mergedError) GetMerged() []address_error.AddressError {
	return m.merged
}

func (m *mergedError) GetKey() string {
	if len(m.merged) == 0 {
		return ""
	}
	return m.merged[0].GetKey()
}

func (m *mergedError) Error() (str string) {
	if len(m.str) > 0 {
		return m.str
	}
	strs := make([]string, len(m.merged))
	for i, err := range m.merged {
		strs[i] = err.Error()
	}
	m.str = strings.Join(strs, ", ")
	return m.str
}

// mergeAddressErrors merges zero or more address errors, dropping nils.
// Returns nil if none remain, the single error if only one remains,
// or a MergedError otherwise.
func mergeAddressErrors(errs ...address_error.AddressError) address_error.AddressError {
	var all []address_error.AddressError
	for _, err := range errs {
		if err == nil {
			continue
		}
		if merge, ok := err.(*mergedError); ok {
			all = append(all, merge.merged...)
		} else {
			all = append(all, err)
		}
	}
	if len(all) == 0 {
		return nil
	}
	if len(all) == 1 {
		return all[0]
	}
	return &mergedError{merged: all}
}

// errorF formats a plain Go error.
func errorF(format string, a ...interface{}) error {
	return fmt.Errorf(format, a...)
}

// sortedErrorStrings returns the messages of errs in sorted order, for deterministic output.
func sortedErrorStrings(errs []address_error.AddressError) []string {
	strs := make([]string, len(errs))
	for i, e := range errs {
		strs[i] = e.Error()
	}
	sort.Strings(strs)
	return strs
}
