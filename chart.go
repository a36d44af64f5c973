package cardfolio

import "github.com/etnz/cardfolio/plot"

// Series returns the value history of e, ready to be plotted.
func (e *Entry) Series() plot.Series {
	return plot.Series{
		Label:  e.name + " - simulated values",
		Values: e.history.Values(),
	}
}
