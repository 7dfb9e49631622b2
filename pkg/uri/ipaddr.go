package uri

import "strconv"

// ipv4State enumerates the states of the IPv4 address validator.
type ipv4State int

const (
	ipv4NotInOctet ipv4State = iota
	ipv4ExpectDigitOrDot
)

// ValidateIPv4Address checks that address is a well-formed dotted-decimal
// IPv4 address: exactly four groups, each a decimal value in [0, 255].
func ValidateIPv4Address(address string) error {
	state := ipv4NotInOctet
	numGroups := 0
	octetStart := 0
	checkOctet := func(octet string) error {
		if _, err := strconv.ParseUint(octet, 10, 8); err != nil {
			return ErrInvalidDecimalOctet
		}
		return nil
	}
	for i := 0; i < len(address); i++ {
		b := address[i]
		switch state {
		case ipv4NotInOctet:
			if !digit.Contains(b) {
				return illegalCharacter("IPv4 address")
			}
			octetStart = i
			state = ipv4ExpectDigitOrDot
		case ipv4ExpectDigitOrDot:
			switch {
			case b == '.':
				numGroups++
				if numGroups > 4 {
					return ErrTooManyAddressParts
				}
				if err := checkOctet(address[octetStart:i]); err != nil {
					return err
				}
				state = ipv4NotInOctet
			case digit.Contains(b):
			default:
				return illegalCharacter("IPv4 address")
			}
		}
	}
	if state == ipv4NotInOctet {
		return ErrTruncatedHost
	}
	numGroups++
	if err := checkOctet(address[octetStart:]); err != nil {
		return err
	}
	switch {
	case numGroups == 4:
		return nil
	case numGroups < 4:
		return ErrTooFewAddressParts
	default:
		return ErrTooManyAddressParts
	}
}

// ipv6State enumerates the states of the IPv6 address validator.
type ipv6State int

const (
	ipv6NoGroupsYet ipv6State = iota
	ipv6ColonButNoGroupsYet
	ipv6AfterDoubleColon
	ipv6InGroupNotIPv4
	ipv6InGroupCouldBeIPv4
	ipv6InGroupIPv4
	ipv6ColonAfterGroup
)

// ValidateIPv6Address checks that address (without brackets) is a
// well-formed IPv6 address: up to eight 16-bit hex groups, at most one "::",
// and an optional embedded dotted-decimal IPv4 trailer counting for the last
// two groups.
func ValidateIPv6Address(address string) error {
	state := ipv6NoGroupsYet
	numGroups := 0
	numDigits := 0
	doubleColon := false
	ipv4Start := 0

scan:
	for i := 0; i < len(address); i++ {
		b := address[i]
		switch state {
		case ipv6NoGroupsYet:
			switch {
			case b == ':':
				state = ipv6ColonButNoGroupsYet
			case digit.Contains(b):
				ipv4Start = i
				numDigits = 1
				state = ipv6InGroupCouldBeIPv4
			case hexdig.Contains(b):
				numDigits = 1
				state = ipv6InGroupNotIPv4
			default:
				return illegalCharacter("IPv6 address")
			}
		case ipv6ColonButNoGroupsYet:
			if b != ':' {
				return illegalCharacter("IPv6 address")
			}
			doubleColon = true
			state = ipv6AfterDoubleColon
		case ipv6AfterDoubleColon:
			numDigits++
			if numDigits > 4 {
				return ErrTooManyDigits
			}
			switch {
			case digit.Contains(b):
				ipv4Start = i
				state = ipv6InGroupCouldBeIPv4
			case hexdig.Contains(b):
				state = ipv6InGroupNotIPv4
			default:
				return illegalCharacter("IPv6 address")
			}
		case ipv6InGroupNotIPv4:
			switch {
			case b == ':':
				numDigits = 0
				numGroups++
				state = ipv6ColonAfterGroup
			case hexdig.Contains(b):
				numDigits++
				if numDigits > 4 {
					return ErrTooManyDigits
				}
			default:
				return illegalCharacter("IPv6 address")
			}
		case ipv6InGroupCouldBeIPv4:
			switch {
			case b == ':':
				numDigits = 0
				numGroups++
				state = ipv6ColonAfterGroup
			case b == '.':
				// The rest of the address is a dotted-decimal
				// IPv4 trailer, validated after the scan.
				state = ipv6InGroupIPv4
				break scan
			default:
				numDigits++
				switch {
				case numDigits > 4:
					return ErrTooManyDigits
				case digit.Contains(b):
				case hexdig.Contains(b):
					state = ipv6InGroupNotIPv4
				default:
					return illegalCharacter("IPv6 address")
				}
			}
		case ipv6ColonAfterGroup:
			switch {
			case b == ':':
				if doubleColon {
					return ErrTooManyDoubleColons
				}
				doubleColon = true
				state = ipv6AfterDoubleColon
			case digit.Contains(b):
				ipv4Start = i
				numDigits++
				state = ipv6InGroupCouldBeIPv4
			case hexdig.Contains(b):
				numDigits++
				state = ipv6InGroupNotIPv4
			default:
				return illegalCharacter("IPv6 address")
			}
		}
	}

	switch state {
	case ipv6ColonButNoGroupsYet, ipv6ColonAfterGroup:
		return ErrTruncatedHost
	case ipv6InGroupNotIPv4, ipv6InGroupCouldBeIPv4:
		numGroups++
	case ipv6InGroupIPv4:
		if err := ValidateIPv4Address(address[ipv4Start:]); err != nil {
			return err
		}
		numGroups += 2
	}
	switch {
	case doubleColon && numGroups <= 7:
		return nil
	case !doubleColon && numGroups == 8:
		return nil
	case !doubleColon && numGroups < 8:
		return ErrTooFewAddressParts
	default:
		return ErrTooManyAddressParts
	}
}
