package lotto

// Lotto number rules.
const (
	MinNumber          = 1
	MaxNumber          = 45
	WinningNumberCount = 6

	// Delimiter separates winning numbers in raw input.
	Delimiter = ","

	// space is rejected anywhere in price and bonus input.
	space = " "
)

// Validator checks raw user input before it becomes a price, a set of
// winning numbers or a bonus number. Each method stops at the first failed
// check and returns one of the model validation errors.
type Validator interface {
	// ValidatePrice checks that input is a non-empty integer without spaces.
	ValidatePrice(input string) error

	// ValidateWinningNumbers checks that input holds exactly six distinct
	// comma separated numbers in range and returns them in input order.
	ValidateWinningNumbers(input string) ([]int, error)

	// ValidateBonus checks that input is a single number in range that does
	// not appear in winningNumbers.
	ValidateBonus(input string, winningNumbers []int) error
}

// Parser converts raw text into integers.
type Parser interface {
	// ParseInt parses text as a base-10 integer.
	ParseInt(text string) (int, error)

	// ParseDelimitedInts splits text on Delimiter and parses every token.
	ParseDelimitedInts(text string) ([]int, error)
}
