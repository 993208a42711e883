package node

// Image displays a single texture frame. Its origin defaults to the center.
type Image struct {
	base
	texture string
	width   float64
	height  float64
}

// NewImage creates a detached image node. Most callers use Factory.Image instead.
func NewImage(id ID, x, y float64, texture string, width, height int) *Image {
	return &Image{
		base:    newBase(id, x, y, 0.5, 0.5),
		texture: texture,
		width:   float64(width),
		height:  float64(height),
	}
}

// Texture returns the texture key the image draws
func (i *Image) Texture() string { return i.texture }

// SetTexture switches the texture key and frame size
func (i *Image) SetTexture(key string, width, height int) {
	i.texture = key
	i.width = float64(width)
	i.height = float64(height)
}

func (i *Image) Size() (float64, float64) { return i.width, i.height }

func (i *Image) Bounds() Rect { return i.bounds(i.width, i.height) }

func (i *Image) Destroy() { i.destroy() }
