package console

const (
	welcome = "Welcome to a movie's world!!!"
	intro   = `This program contains two parts: recommendation and comparison.

In the recommendation part, you can select a time interval, say, January. Then box office champions in January of the last fifty years in the US will be listed. Feel free to select one movie to know more about it!!!
In the comparison part, a website will show up where you can select the movie kind, a time interval, and a variable to compare. There are many options available.
Now, please enjoy it!`

	promptTop     = "Do you want a recommendation or comparison or exit? Please input r for recommendation or c for comparison or exit for exit:"
	promptKindAsk = "Do you want to see quarterly or monthly box office champions in the US of the last fifty years?"
	promptKind    = "Please input quarter to see quarterly champions or month to see monthly champions or back or exit:"
	promptQuarter = "Choose the quarter you want to see or exit or back. For quarter search, please input numbers from 1 to 4 indicating the corresponding quarter:"
	promptMonth   = "Choose the month you want to see or exit or back. For month search, please type the month (e.g. january):"
	promptDetail  = "Choose the number for detail search or exit or back: "

	invalidTop     = "Please input valid words. (e.g. r for recommendation or c for comparison or exit for exit)"
	invalidKind    = "Please input your selection from four options: quarter/ month/ back/ exit"
	invalidQuarter = "Please input a valid number ranging from 1 to 4 or exit or back."
	invalidMonth   = "Please input a valid month. (e.g. january)"
	invalidDetail  = "[Error] Invalid input"
)
