package goip

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/LucasZ876/IPAddress-sub000/address_error"
	"github.com/LucasZ876/IPAddress-sub000/address_string_param"
)

var defaultIPAddrParameters = address_string_param.NewIPAddressStringParamsBuilder().ToParams()

// IPAddressString parses the string representation of an IP address or
// subnet, such as "1.2.3.4", "1:2:3:4:5:6:7:8", "1.2.0.0/16", "1.*.1-3.1-4",
// or "1111:222::/64". Parsing and materialization of the resulting
// IPAddress and SequentialRange are lazy and cached: the first successful
// call to GetAddress or ToSequentialRange fixes the interpretation that
// every subsequent call observes, per the parser's caching contract.
//
// This type is concurrency-safe: once constructed, an IPAddressString's
// input text never changes, and its derived state is computed at most once.
type IPAddressString struct {
	str       string
	params    address_string_param.IPAddressStringParams
	validated bool
	address   *IPAddress
	addrErr   address_error.AddressStringError
}

// NewIPAddressString constructs an IPAddressString using the default,
// maximally permissive parsing configuration.
func NewIPAddressString(str string) *IPAddressString {
	return &IPAddressString{str: strings.TrimSpace(str), params: defaultIPAddrParameters}
}

// NewIPAddressStringParams constructs an IPAddressString that parses str
// according to the given configuration record; a nil params uses the default.
func NewIPAddressStringParams(str string, params address_string_param.IPAddressStringParams) *IPAddressString {
	if params == nil {
		params = defaultIPAddrParameters
	}
	return &IPAddressString{str: strings.TrimSpace(str), params: params}
}

// String returns the original text this IPAddressString was constructed from.
func (addrStr *IPAddressString) String() string {
	if addrStr == nil {
		return "<nil>"
	}
	return addrStr.str
}

func (addrStr *IPAddressString) ensureValidated() {
	if addrStr.validated {
		return
	}
	addrStr.validated = true
	addrStr.address, addrStr.addrErr = parseIPAddress(addrStr.str, addrStr.params)
}

// Validate validates the string, returning nil if it is a valid address
// string under this instance's configuration, or a descriptive error if not.
func (addrStr *IPAddressString) Validate() address_error.AddressStringError {
	addrStr.ensureValidated()
	return addrStr.addrErr
}

// IsValid returns whether this is a valid IP address string.
func (addrStr *IPAddressString) IsValid() bool {
	return addrStr.Validate() == nil
}

// GetAddress returns the materialized address, or nil if the string is invalid.
// Unlike ToAddress it discards the parse error; use Validate or ToAddress to
// learn why an invalid string failed.
func (addrStr *IPAddressString) GetAddress() *IPAddress {
	addrStr.ensureValidated()
	return addrStr.address
}

// ToAddress returns the materialized address and any parse error.
func (addrStr *IPAddressString) ToAddress() (*IPAddress, address_error.AddressStringError) {
	addrStr.ensureValidated()
	return addrStr.address, addrStr.addrErr
}

// GetVersionedAddress resolves the "all addresses" string ("*") to the block
// of all addresses of the requested version; for any other valid string,
// including the empty string (which parses to the IPv4 loopback), it
// behaves like GetAddress.
func (addrStr *IPAddressString) GetVersionedAddress(version IPVersion) *IPAddress {
	addrStr.ensureValidated()
	if addrStr.addrErr != nil {
		return nil
	}
	if addrStr.address != nil {
		return addrStr.address
	}
	return allAddressesOfVersion(version)
}

// GetNetworkPrefixLen returns the address string's associated network
// prefix length, or nil if it has none or the string is invalid.
func (addrStr *IPAddressString) GetNetworkPrefixLen() PrefixLen {
	addrStr.ensureValidated()
	if addrStr.address == nil {
		return nil
	}
	return addrStr.address.GetNetworkPrefixLen()
}

// IsPrefixed returns whether this address string has an associated prefix length.
func (addrStr *IPAddressString) IsPrefixed() bool {
	return addrStr.GetNetworkPrefixLen() != nil
}

// IsEmpty returns whether the address string is the empty string.
func (addrStr *IPAddressString) IsEmpty() bool {
	return strings.TrimSpace(addrStr.str) == ""
}

// IsIPv4 returns whether this valid address string represents IPv4.
func (addrStr *IPAddressString) IsIPv4() bool {
	addrStr.ensureValidated()
	return addrStr.address != nil && addrStr.address.IsIPv4()
}

// IsIPv6 returns whether this valid address string represents IPv6.
func (addrStr *IPAddressString) IsIPv6() bool {
	addrStr.ensureValidated()
	return addrStr.address != nil && addrStr.address.IsIPv6()
}

// PrefixContains returns whether other's network portion, to this string's
// prefix length, falls within this string's network portion, answered
// consistently whether or not either string has been materialized yet.
func (addrStr *IPAddressString) PrefixContains(other *IPAddressString) bool {
	a, aerr := addrStr.ToAddress()
	b, berr := other.ToAddress()
	if aerr != nil || berr != nil || a == nil || b == nil {
		return false
	}
	return a.GetSection().PrefixContains(b.GetSection())
}

// ToSequentialRange returns the SequentialRange of addresses this string
// represents, or an error if the string is invalid.
func (addrStr *IPAddressString) ToSequentialRange() (*SequentialRange, address_error.AddressStringError) {
	addr, err := addrStr.ToAddress()
	if err != nil {
		return nil, err
	}
	return addr.ToSequentialRange(), nil
}

// Format implements fmt.Formatter, supporting %s, %q, %v and %x/%X.
func (addrStr IPAddressString) Format(state fmt.State, verb rune) {
	switch verb {
	case 'q':
		fmt.Fprintf(state, "%q", addrStr.str)
	case 'x', 'X':
		format := "%" + string(verb)
		fmt.Fprintf(state, format, addrStr.str)
	default:
		fmt.Fprint(state, addrStr.str)
	}
}

// ValidatePrefixLenStr validates that str (without a leading '/') is a
// valid prefix length for the given version; any version other than IPv4 is
// checked against the IPv6 bit count.
func ValidatePrefixLenStr(str string, version IPVersion) (PrefixLen, address_error.AddressStringError) {
	n, err := strconv.Atoi(str)
	if err != nil || n < 0 {
		return nil, newAddressStringError("ipaddress.error.prefixSize", str)
	}
	max := IPv6BitCount
	if version.IsIPv4() {
		max = IPv4BitCount
	}
	if n > max {
		return nil, newPrefixLengthErrorAsStringErr(n)
	}
	return cacheBitCount(n), nil
}

func newPrefixLengthErrorAsStringErr(n int) address_error.AddressStringError {
	return newAddressStringError("ipaddress.error.prefixSize", strconv.Itoa(n))
}

func allAddressesOfVersion(version IPVersion) *IPAddress {
	if version.IsIPv6() {
		a, _ := NewIPv6AddressFromBytes(make([]byte, 16))
		return a.ToIP().ToPrefixBlock(0)
	}
	a, _ := NewIPv4AddressFromBytes(make([]byte, 4))
	return a.ToIP().ToPrefixBlock(0)
}
