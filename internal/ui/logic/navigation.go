package logic

// ScrollIntoView returns the viewport offset that keeps index visible in a
// window of height rows over total rows, moving as little as possible from
// offset.
func ScrollIntoView(index, offset, height, total int) int {
	if height < 1 {
		height = 1
	}
	if index < offset {
		offset = index
	}
	if index >= offset+height {
		offset = index - height + 1
	}

	maxOffset := total - height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

// IndexOf returns the position of code in codes, or -1.
func IndexOf(codes []string, code string) int {
	for i, c := range codes {
		if c == code {
			return i
		}
	}
	return -1
}
