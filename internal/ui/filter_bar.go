package ui

// Choice is one control of the filter bar.
type Choice struct {
	View   View
	Label  string
	Active bool
}

// FilterBar presents the two views and reports the user's pick through
// OnSelect. It holds no state of its own.
type FilterBar struct {
	OnSelect func(View)
}

// Choices lists the controls in display order, marking the active one.
func (FilterBar) Choices(active View) []Choice {
	return []Choice{
		{View: ViewBooks, Label: "Books", Active: active == ViewBooks},
		{View: ViewPublishers, Label: "Publishers", Active: active == ViewPublishers},
	}
}

// Activate handles a control activation carrying the literal "books" or
// "publishers". Unknown literals are rejected and OnSelect is not called.
func (f FilterBar) Activate(literal string) error {
	view, err := ParseView(literal)
	if err != nil {
		return err
	}

	if f.OnSelect != nil {
		f.OnSelect(view)
	}

	return nil
}
