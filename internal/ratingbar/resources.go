package ratingbar

import "fyne.io/fyne/v2"

const starPath = `M12 2l2.94 6.26 6.86.8-5.07 4.7 1.35 6.78L12 17.1l-6.08 3.44 1.35-6.78-5.07-4.7 6.86-.8z`

// FilledStarResource is the default image of a selected star.
var FilledStarResource = &fyne.StaticResource{
	StaticName: "star_filled.svg",
	StaticContent: []byte(`<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24">` +
		`<path fill="#4caf50" d="` + starPath + `"/></svg>`),
}

// EmptyStarResource is the default image of an unselected star.
var EmptyStarResource = &fyne.StaticResource{
	StaticName: "star_empty.svg",
	StaticContent: []byte(`<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24">` +
		`<path fill="#bdbdbd" d="` + starPath + `"/></svg>`),
}
