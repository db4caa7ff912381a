package dropdown

// ScrollIntoView returns the scroll offset that brings the item spanning
// rows [top, bottom) fully into a window of the given height starting at
// offset, moving by the minimum amount. The offset is returned unchanged when
// the item is already visible or the window has no height.
func ScrollIntoView(offset, height, top, bottom int) int {
	if height <= 0 || bottom <= top {
		return offset
	}
	if top < offset {
		return top
	}
	if bottom > offset+height {
		next := bottom - height
		if next < 0 {
			return 0
		}
		return next
	}
	return offset
}
