package walletconnect

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

var (
	ErrNoSignMessage      = errors.New("sign params carry no message")
	ErrInvalidSignMessage = errors.New("invalid sign message")
)

var hexStringRegexp = regexp.MustCompile(`^0x[0-9a-fA-F]*$`)

// IsHexString reports whether value is a 0x prefixed hex string. Odd lengths match.
func IsHexString(value string) bool {
	return hexStringRegexp.MatchString(value)
}

// ConvertHexToUTF8 decodes a hex string into text. Values that are not hex strings
// are returned unchanged.
func ConvertHexToUTF8(value string) (string, error) {
	if !IsHexString(value) {
		return value, nil
	}

	data, err := hexutil.Decode(value)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidSignMessage, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: not valid UTF-8 text", ErrInvalidSignMessage)
	}
	return string(data), nil
}

// SignParamsMessage extracts the message of personal_sign and eth_sign params.
// The two methods order address and message differently, so the message is the
// first param that is not an address.
func SignParamsMessage(params []json.RawMessage) (string, error) {
	for _, raw := range params {
		var value string
		if err := json.Unmarshal(raw, &value); err != nil {
			return string(raw), nil
		}
		if common.IsHexAddress(value) {
			continue
		}
		return ConvertHexToUTF8(value)
	}
	return "", ErrNoSignMessage
}
