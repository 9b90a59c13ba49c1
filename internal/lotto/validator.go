package lotto

import (
	"strings"

	"lotto-gate/internal/model"
)

// validator implements Validator on top of a Parser.
// It holds no mutable state and is safe for concurrent use.
type validator struct {
	parser Parser
}

// NewValidator creates a validator that parses input with parser.
// A nil parser selects the default number parser.
func NewValidator(parser Parser) Validator {
	if parser == nil {
		parser = NewParser()
	}
	return &validator{parser: parser}
}

var defaultValidator = NewValidator(nil)

// ValidatePrice validates price input with the default parser.
func ValidatePrice(input string) error {
	return defaultValidator.ValidatePrice(input)
}

// ValidateWinningNumbers validates winning number input with the default parser.
func ValidateWinningNumbers(input string) ([]int, error) {
	return defaultValidator.ValidateWinningNumbers(input)
}

// ValidateBonus validates bonus number input with the default parser.
func ValidateBonus(input string, winningNumbers []int) error {
	return defaultValidator.ValidateBonus(input, winningNumbers)
}

// ValidatePrice checks, in order: empty, space, integer.
// No range restriction applies to the price.
func (v *validator) ValidatePrice(input string) error {
	if err := checkEmpty(input); err != nil {
		return err
	}
	if err := checkNoSpace(input); err != nil {
		return err
	}
	_, err := v.parseInt(input)
	return err
}

// ValidateWinningNumbers checks, in order: empty, trailing delimiter,
// integer tokens, count, duplicates, range.
func (v *validator) ValidateWinningNumbers(input string) ([]int, error) {
	if err := checkEmpty(input); err != nil {
		return nil, err
	}
	if err := checkTrailingDelimiter(input); err != nil {
		return nil, err
	}

	numbers, err := v.parser.ParseDelimitedInts(input)
	if err != nil {
		return nil, model.ErrNotInteger
	}

	if err := CheckWinningNumbers(numbers); err != nil {
		return nil, err
	}
	return numbers, nil
}

// CheckWinningNumbers applies the count, duplicate and range checks of
// ValidateWinningNumbers to numbers that arrive already parsed.
func CheckWinningNumbers(numbers []int) error {
	if err := checkLength(numbers); err != nil {
		return err
	}
	if err := checkDistinct(numbers); err != nil {
		return err
	}
	for _, n := range numbers {
		if err := checkRange(n); err != nil {
			return err
		}
	}
	return nil
}

// ValidateBonus checks, in order: empty, space, integer, range, and
// collision with the winning numbers.
func (v *validator) ValidateBonus(input string, winningNumbers []int) error {
	if err := checkEmpty(input); err != nil {
		return err
	}
	if err := checkNoSpace(input); err != nil {
		return err
	}

	bonus, err := v.parseInt(input)
	if err != nil {
		return err
	}
	if err := checkRange(bonus); err != nil {
		return err
	}

	for _, n := range winningNumbers {
		if n == bonus {
			return model.ErrDuplicatedNumber
		}
	}

	return nil
}

func (v *validator) parseInt(input string) (int, error) {
	n, err := v.parser.ParseInt(input)
	if err != nil {
		return 0, model.ErrNotInteger
	}
	return n, nil
}

func checkEmpty(input string) error {
	if input == "" {
		return model.ErrEmptyInput
	}
	return nil
}

func checkNoSpace(input string) error {
	if strings.Contains(input, space) {
		return model.ErrSpaceIncluded
	}
	return nil
}

// checkTrailingDelimiter rejects "1,2,3,4,5,6," before parsing so the
// trailing empty field is reported as a length problem.
func checkTrailingDelimiter(input string) error {
	if strings.HasSuffix(input, Delimiter) {
		return model.ErrOutOfLength
	}
	return nil
}

func checkLength(numbers []int) error {
	if len(numbers) != WinningNumberCount {
		return model.ErrOutOfLength
	}
	return nil
}

func checkDistinct(numbers []int) error {
	seen := make(map[int]struct{}, len(numbers))
	for _, n := range numbers {
		seen[n] = struct{}{}
	}
	if len(seen) != len(numbers) {
		return model.ErrDuplicatedNumber
	}
	return nil
}

func checkRange(n int) error {
	if n < MinNumber || n > MaxNumber {
		return model.ErrOutOfNumberRange
	}
	return nil
}
