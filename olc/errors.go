package olc

import "errors"

var (
	// ErrInvalidCode is returned for strings that fail validation.
	ErrInvalidCode = errors.New("invalid code")

	// ErrFullCodeExpected is returned when a short (or otherwise
	// non-full) code is passed where a full code is required.
	ErrFullCodeExpected = errors.New("full code expected")

	// ErrCannotShortenPaddedCodes is returned by Shorten for codes
	// containing the padding character.
	ErrCannotShortenPaddedCodes = errors.New("cannot shorten padded codes")

	// ErrCodeLengthTooSmall is returned by Shorten for codes with
	// fewer than six significant digits.
	ErrCodeLengthTooSmall = errors.New("code length too small")

	// ErrInvalidCodeLength is returned by Encode and EncodeIntegers
	// for unsupported code lengths: below 2, or odd lengths below
	// the separator position.
	ErrInvalidCodeLength = errors.New("invalid code length")
)
