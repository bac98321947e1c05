package gadget

// Presets returns the built-in gadget catalog, in palette order.
func Presets() []*Gadget {
	one := WH{1, 1}

	nope := New(NewDef(1, 0), one, nil, 0).WithName("Nope")

	twoWay := DefFromTraversals(1, 2,
		Tr(0, 0, 0, 1), Tr(0, 1, 0, 0),
	)
	straight := New(twoWay, one, []int{0, 2}, 0).WithName("Straight")
	turn := New(twoWay, one, []int{0, 1}, 0).WithName("Turn")

	twoPair := DefFromTraversals(1, 4,
		Tr(0, 0, 0, 1), Tr(0, 1, 0, 0),
		Tr(0, 2, 0, 3), Tr(0, 3, 0, 2),
	)
	cross := New(twoPair, one, []int{0, 2, 1, 3}, 0).WithName("Cross")
	turn2 := New(twoPair, one, []int{0, 1, 2, 3}, 0).WithName("2 turns")

	way3 := New(DefFromTraversals(1, 3,
		Tr(0, 0, 0, 1), Tr(0, 1, 0, 0),
		Tr(0, 1, 0, 2), Tr(0, 2, 0, 1),
		Tr(0, 2, 0, 0), Tr(0, 0, 0, 2),
	), one, []int{0, 1, 3}, 0).WithName("3-way")

	way4 := New(DefFromTraversals(1, 4,
		Tr(0, 0, 0, 1), Tr(0, 1, 0, 0),
		Tr(0, 1, 0, 2), Tr(0, 2, 0, 1),
		Tr(0, 2, 0, 0), Tr(0, 0, 0, 2),
		Tr(0, 0, 0, 3), Tr(0, 3, 0, 0),
		Tr(0, 1, 0, 3), Tr(0, 3, 0, 1),
		Tr(0, 2, 0, 3), Tr(0, 3, 0, 2),
	), one, []int{0, 1, 2, 3}, 0).WithName("4-way")

	diode := New(DefFromTraversals(1, 2,
		Tr(0, 0, 0, 1),
	), one, []int{0, 2}, 0).WithName("Diode")

	toggle := New(DefFromTraversals(2, 2,
		Tr(0, 0, 1, 1), Tr(1, 1, 0, 0),
	), one, []int{0, 2}, 0).WithName("Toggle")

	dicrumbler := New(DefFromTraversals(2, 2,
		Tr(0, 0, 1, 1),
	), one, []int{0, 2}, 0).WithName("Directed crumbler")

	crumbler := New(DefFromTraversals(2, 2,
		Tr(0, 0, 1, 1), Tr(0, 1, 1, 0),
	), one, []int{0, 2}, 0).WithName("Crumbler")

	scd := New(DefFromTraversals(2, 3,
		Tr(0, 0, 1, 0), Tr(1, 1, 0, 2),
	), one, []int{0, 3, 1}, 0).WithName("Self-closing door")

	toggle2 := New(DefFromTraversals(2, 4,
		Tr(0, 0, 1, 1), Tr(1, 1, 0, 0),
		Tr(0, 2, 1, 3), Tr(1, 3, 0, 2),
	), one, []int{0, 1, 2, 3}, 0).WithName("2-toggle")

	lockToggle2 := New(DefFromTraversals(3, 4,
		Tr(0, 0, 1, 1), Tr(1, 1, 0, 0),
		Tr(0, 2, 2, 3), Tr(2, 3, 0, 2),
	), one, []int{0, 1, 2, 3}, 0).WithName("Locking 2-toggle")

	mismatchedDicrumbler := New(DefFromTraversals(2, 4,
		Tr(0, 0, 1, 1), Tr(1, 2, 0, 3),
	), one, []int{0, 1, 2, 3}, 0).WithName("Mismatched dicrumblers")

	mismatchedCrumbler := New(DefFromTraversals(2, 4,
		Tr(0, 0, 1, 1), Tr(0, 1, 1, 0),
		Tr(1, 2, 0, 3), Tr(1, 3, 0, 2),
	), one, []int{0, 1, 2, 3}, 0).WithName("Mismatched crumblers")

	matchedDicrumbler := New(DefFromTraversals(2, 4,
		Tr(0, 0, 1, 1), Tr(0, 2, 1, 3),
	), one, []int{0, 1, 2, 3}, 0).WithName("Matched dicrumblers")

	matchedCrumbler := New(DefFromTraversals(2, 4,
		Tr(0, 0, 1, 1), Tr(0, 1, 1, 0),
		Tr(0, 2, 1, 3), Tr(0, 3, 1, 2),
	), one, []int{0, 1, 2, 3}, 0).WithName("Matched crumblers")

	toggleLock := New(DefFromTraversals(2, 4,
		Tr(0, 0, 1, 1), Tr(1, 1, 0, 0),
		Tr(0, 2, 0, 3), Tr(0, 3, 0, 2),
	), one, []int{0, 1, 2, 3}, 0).WithName("Toggle lock")

	tripwireLock := New(DefFromTraversals(2, 4,
		Tr(0, 0, 1, 1), Tr(1, 1, 0, 0),
		Tr(0, 1, 1, 0), Tr(1, 0, 0, 1),
		Tr(0, 2, 0, 3), Tr(0, 3, 0, 2),
	), one, []int{0, 1, 2, 3}, 0).WithName("Tripwire lock")

	tripwireToggle := New(DefFromTraversals(2, 4,
		Tr(0, 0, 1, 1), Tr(1, 1, 0, 0),
		Tr(0, 1, 1, 0), Tr(1, 0, 0, 1),
		Tr(0, 2, 1, 3), Tr(1, 3, 0, 2),
	), one, []int{0, 1, 2, 3}, 0).WithName("Tripwire toggle")

	door := New(DefFromTraversals(2, 6,
		Tr(0, 0, 1, 1),
		Tr(0, 2, 0, 3),
		Tr(1, 0, 1, 1),
		Tr(1, 2, 0, 3),
		Tr(1, 4, 1, 5),
	), WH{2, 1}, []int{4, 5, 1, 2, 0, 3}, 0).WithName("Door")

	return []*Gadget{
		nope, straight, turn, cross, turn2, way3, way4, diode,
		toggle, dicrumbler, crumbler, scd, toggle2, lockToggle2,
		mismatchedDicrumbler, mismatchedCrumbler,
		matchedDicrumbler, matchedCrumbler,
		toggleLock, tripwireLock, tripwireToggle, door,
	}
}

// IsNope reports whether the gadget is the blank eraser tile.
func (g *Gadget) IsNope() bool {
	return g.Def().NumStates() == 1 && g.Def().NumPorts() == 0 &&
		g.Size() == WH{1, 1}
}
