package model

// DeleteEntities removes the listed handles from each collection. Deleting a
// point cascades into every line referencing it; surviving points are
// compacted and surviving line references remapped to the compacted handles.
// Extended lines and circles are removed only when listed directly.
// Reports whether anything was removed.
func (s *Store) DeleteEntities(pointSel, lineSel, extSel, circleSel []int) bool {
	removePoint := make([]bool, len(s.points))
	removeLine := make([]bool, len(s.lines))
	removeExt := make([]bool, len(s.extended))
	removeCircle := make([]bool, len(s.circles))

	mark := func(flags []bool, sel []int) {
		for _, i := range sel {
			if i >= 0 && i < len(flags) {
				flags[i] = true
			}
		}
	}
	mark(removePoint, pointSel)
	mark(removeLine, lineSel)
	mark(removeExt, extSel)
	mark(removeCircle, circleSel)

	// Cascade: a line dies with either of its points.
	for i, line := range s.lines {
		if removePoint[line.A] || removePoint[line.B] {
			removeLine[i] = true
		}
	}

	changed := false

	// Compact points and build the handle remap.
	remap := make([]int, len(s.points))
	kept := s.points[:0]
	for i, p := range s.points {
		if removePoint[i] {
			remap[i] = -1
			changed = true
			continue
		}
		remap[i] = len(kept)
		kept = append(kept, p)
	}
	s.points = kept

	keptLines := s.lines[:0]
	for i, line := range s.lines {
		if removeLine[i] {
			changed = true
			continue
		}
		line.A = remap[line.A]
		line.B = remap[line.B]
		keptLines = append(keptLines, line)
	}
	s.lines = keptLines

	keptExt := s.extended[:0]
	for i, e := range s.extended {
		if removeExt[i] {
			changed = true
			continue
		}
		keptExt = append(keptExt, e)
	}
	s.extended = keptExt

	keptCircles := s.circles[:0]
	for i, c := range s.circles {
		if removeCircle[i] {
			changed = true
			continue
		}
		keptCircles = append(keptCircles, c)
	}
	s.circles = keptCircles

	return changed
}
