package utils

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"

	color_extractor "github.com/marekm4/color-extractor"
)

const (
	HeaderImageURL = "https://cdn.akamai.steamstatic.com/steam/apps/%s/header.jpg"
)

// ExtractDominantColours downloads an image and returns its dominant
// colours as hex strings, most dominant first.
func ExtractDominantColours(client *http.Client, imageUrl string) ([]string, error) {
	req, err := http.NewRequest("GET", imageUrl, nil)
	if err != nil {
		return []string{}, err
	}
	res, err := client.Do(req)
	if err != nil {
		return []string{}, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return []string{}, fmt.Errorf("unexpected status fetching image: %s", res.Status)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return []string{}, err
	}

	img, _, err := image.Decode(bytes.NewReader(body))
	if err != nil {
		return []string{}, err
	}

	domColours := []string{}
	for _, c := range color_extractor.ExtractColors(img) {
		domColours = append(domColours, colorToHexString(c))
	}
	return domColours, nil
}

func colorToHexString(c color.Color) string {
	r, g, b, a := c.RGBA()
	rgba := color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
	return fmt.Sprintf("#%.2x%.2x%.2x", rgba.R, rgba.G, rgba.B)
}
