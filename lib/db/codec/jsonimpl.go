package codec

import (
	"github.com/json-iterator/go"
	"github.com/uzaira123/Uzaira-Library-lsm/lib/book"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// NewJSONCodec creates a new codec using indented json encoding
func NewJSONCodec() ICodec {
	return &jsonCodecImpl{}
}

// jsonCodecImpl implements the ICodec interface using json encoding
type jsonCodecImpl struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see codec.ICodec)
// --------------------------------------------------------------------------

func (j jsonCodecImpl) Name() string {
	return "json"
}

func (j jsonCodecImpl) Encode(books []book.Book) ([]byte, error) {
	data, err := json.MarshalIndent(nonNil(books), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func (j jsonCodecImpl) Decode(b []byte) ([]book.Book, error) {
	var books []book.Book
	if err := json.Unmarshal(b, &books); err != nil {
		return nil, err
	}
	return nonNil(books), nil
}
