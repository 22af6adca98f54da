package feedings

import "time"

// Meal es el código de una comida, tal como se guarda.
type Meal string

const (
	MealBreakfast Meal = "B"
	MealLunch     Meal = "L"
	MealDinner    Meal = "D"
)

// Meals en el orden en que se ofrecen en el formulario.
var Meals = []Meal{MealBreakfast, MealLunch, MealDinner}

func (m Meal) Display() string {
	switch m {
	case MealBreakfast:
		return "Breakfast"
	case MealLunch:
		return "Lunch"
	case MealDinner:
		return "Dinner"
	default:
		return string(m)
	}
}

// DateLayout es el formato de fecha de los formularios y de String().
const DateLayout = "2006-01-02"

type Feeding struct {
	ID    string
	CatID string

	// Date es un día calendario (medianoche UTC).
	Date time.Time
	Meal Meal

	CreatedAt time.Time
}

func (f Feeding) String() string {
	return f.Meal.Display() + " on " + f.Date.Format(DateLayout)
}
