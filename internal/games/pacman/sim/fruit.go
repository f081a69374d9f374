package sim

// Fruit is a bonus item kind.
type Fruit uint8

const (
	FruitCherry Fruit = iota
	FruitStrawberry
	FruitOrange
	FruitApple
	FruitMelon
	FruitGalaxian
	FruitBell
	FruitKey
)

var fruitPoints = [...]int{
	FruitCherry:     100,
	FruitStrawberry: 300,
	FruitOrange:     500,
	FruitApple:      700,
	FruitMelon:      1000,
	FruitGalaxian:   2000,
	FruitBell:       3000,
	FruitKey:        5000,
}

var fruitNames = [...]string{
	FruitCherry:     "Cherry",
	FruitStrawberry: "Strawberry",
	FruitOrange:     "Orange",
	FruitApple:      "Apple",
	FruitMelon:      "Melon",
	FruitGalaxian:   "Galaxian",
	FruitBell:       "Bell",
	FruitKey:        "Key",
}

// Points returns the score for eating the fruit.
func (f Fruit) Points() int {
	if int(f) >= len(fruitPoints) {
		return 0
	}
	return fruitPoints[f]
}

func (f Fruit) String() string {
	if int(f) >= len(fruitNames) {
		return "Unknown"
	}
	return fruitNames[f]
}

// FruitForLevel picks the bonus item shown on a level.
func FruitForLevel(level int) Fruit {
	switch {
	case level <= 1:
		return FruitCherry
	case level == 2:
		return FruitStrawberry
	case level <= 4:
		return FruitOrange
	case level <= 6:
		return FruitApple
	case level <= 8:
		return FruitMelon
	case level <= 10:
		return FruitGalaxian
	case level <= 12:
		return FruitBell
	default:
		return FruitKey
	}
}
