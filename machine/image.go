package machine

import (
	"encoding/json"
	"io"
)

// Image is the initial machine state: data cells and program cells laid
// out from address zero. A nil program cell is an empty one.
type Image struct {
	Data    []int          `json:"data"`
	Program []*Instruction `json:"program"`
}

// LoadImage decodes a JSON image.
func LoadImage(r io.Reader) (image *Image, err error) {
	image = &Image{}

	err = json.NewDecoder(r).Decode(image)
	if err != nil {
		image = nil
	}

	return
}

// Save encodes the image as JSON.
func (image *Image) Save(w io.Writer) error {
	return json.NewEncoder(w).Encode(image)
}
