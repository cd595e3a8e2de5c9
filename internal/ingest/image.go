package ingest

import (
	"bytes"
	"crypto/md5"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"sync"

	"github.com/bep/imagemeta"
	"github.com/corona10/goimagehash"
	_ "golang.org/x/image/webp"
)

// dupThreshold is the maximum dHash Hamming distance below which two
// images are considered perceptually identical.
const dupThreshold = 10

// imageID derives the stable record identity from the filename plus the
// first 8 hex digits of the content MD5, so a same-named re-upload of
// different bytes still gets its own record.
func imageID(filename string, data []byte) string {
	sum := md5.Sum(data)
	return fmt.Sprintf("%s_%x", filename, sum[:4])
}

func imageDimensions(data []byte) (int, int, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}

// exifDescription pulls an embedded EXIF/IPTC description out of the image
// bytes, if the photographer shipped one. Used as a caption fallback when
// the model is unavailable. Graceful degradation: never returns an error.
func exifDescription(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	var description string
	wanted := map[imagemeta.Source]map[string]bool{
		imagemeta.EXIF: {"ImageDescription": true},
		imagemeta.IPTC: {"Caption-Abstract": true},
	}

	_, err := imagemeta.Decode(imagemeta.Options{
		R:       bytes.NewReader(data),
		Sources: imagemeta.EXIF | imagemeta.IPTC,
		ShouldHandleTag: func(ti imagemeta.TagInfo) bool {
			if tags, ok := wanted[ti.Source]; ok {
				return tags[ti.Tag]
			}
			return false
		},
		HandleTag: func(ti imagemeta.TagInfo) error {
			if s, ok := ti.Value.(string); ok && description == "" {
				description = s
			}
			return nil
		},
	})
	if err != nil {
		return ""
	}

	return description
}

// dupFilter flags perceptually identical uploads within one session.
// It is safe for concurrent use.
type dupFilter struct {
	mu     sync.Mutex
	hashes map[string]*goimagehash.ImageHash
}

func newDupFilter() *dupFilter {
	return &dupFilter{hashes: make(map[string]*goimagehash.ImageHash)}
}

// check returns the image id of a previously seen perceptual duplicate, or
// "" if the image is new. If hashing fails the image is accepted.
func (d *dupFilter) check(id string, data []byte) string {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return ""
	}

	hash, err := goimagehash.DifferenceHash(img)
	if err != nil {
		return ""
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	for seenID, h := range d.hashes {
		dist, err := hash.Distance(h)
		if err == nil && dist < dupThreshold {
			return seenID
		}
	}

	d.hashes[id] = hash
	return ""
}
