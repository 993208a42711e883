package node

// TextureSizer reports the frame size of a loaded texture
type TextureSizer interface {
	Size(key string) (w, h int)
}

// Factory creates nodes and appends them to a display list
type Factory struct {
	list     *DisplayList
	textures TextureSizer
	measure  TextMeasurer
}

// NewFactory creates a factory bound to list.
// measure may be nil; text nodes then report a zero size.
func NewFactory(list *DisplayList, textures TextureSizer, measure TextMeasurer) *Factory {
	return &Factory{
		list:     list,
		textures: textures,
		measure:  measure,
	}
}

// Image adds an image node at (x, y) drawing the texture key
func (f *Factory) Image(x, y float64, key string) *Image {
	w, h := f.textures.Size(key)
	img := NewImage(f.list.NextID(), x, y, key, w, h)
	f.list.Add(img)
	return img
}

// Text adds a text node at (x, y)
func (f *Factory) Text(x, y float64, s string, style TextStyle) *Text {
	txt := NewText(f.list.NextID(), x, y, s, style, f.measure)
	f.list.Add(txt)
	return txt
}

// List returns the display list the factory appends to
func (f *Factory) List() *DisplayList {
	return f.list
}
