package handlers

import (
	"image"
	"image/jpeg"
	"image/png"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/nfnt/resize"
)

var imageClient = &http.Client{Timeout: 15 * time.Second}

// FetchImage fetches a recipe image from a URL, scales it down for the app
// and returns it. The "height" parameter overrides the default 500px.
func FetchImage(w http.ResponseWriter, r *http.Request) {
	// Get the URL parameter
	imageURL := r.URL.Query().Get("url")
	if imageURL == "" {
		http.Error(w, "URL parameter is required", http.StatusBadRequest)
		return
	}

	height := uint(500)
	if h := r.URL.Query().Get("height"); h != "" {
		if parsed, err := strconv.Atoi(h); err == nil && parsed > 0 {
			height = uint(parsed)
		}
	}

	// Fetch the image from the URL
	resp, err := imageClient.Get(imageURL)
	if err != nil {
		http.Error(w, "Failed to fetch image", http.StatusInternalServerError)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		http.Error(w, "Image source returned "+resp.Status, http.StatusBadGateway)
		return
	}

	// Decode the image
	img, format, err := image.Decode(resp.Body)
	if err != nil {
		http.Error(w, "Failed to decode image", http.StatusInternalServerError)
		return
	}

	// Scale width to keep the aspect ratio
	bounds := img.Bounds()
	aspectRatio := float64(bounds.Dx()) / float64(bounds.Dy())
	width := uint(float64(height) * aspectRatio)

	resized := resize.Resize(width, height, img, resize.Lanczos3)

	w.Header().Set("Content-Type", "image/"+format)

	switch strings.ToLower(format) {
	case "jpeg", "jpg":
		err = jpeg.Encode(w, resized, nil)
	case "png":
		err = png.Encode(w, resized)
	default:
		http.Error(w, "Unsupported image format", http.StatusUnsupportedMediaType)
		return
	}

	if err != nil {
		http.Error(w, "Failed to encode image", http.StatusInternalServerError)
	}
}
