package bank

import "github.com/letsssgooo/coffeequiz/internal/quiz"

// DefaultTitle - название встроенного банка.
const DefaultTitle = "Coffee Trivia"

// DefaultCount - сколько вопросов выбирается из встроенного банка за попытку.
const DefaultCount = 10

var coffeeQuestions = []quiz.Question{
	{
		Text:        "What is the ideal brewing temperature for coffee?",
		Options:     []string{"80-85°C", "90-96°C", "100-105°C", "70-75°C"},
		Correct:     1,
		Explanation: "Water between 90 and 96°C extracts the flavour compounds without scorching the grounds.",
	},
	{
		Text:        "Which country is the largest producer of coffee?",
		Options:     []string{"Colombia", "Brazil", "Vietnam", "Ethiopia"},
		Correct:     1,
		Explanation: "Brazil has been the world's largest coffee producer for more than 150 years.",
	},
	{
		Text:        "What is the standard dose for a single espresso shot?",
		Options:     []string{"5-7g", "7-9g", "18-20g", "12-15g"},
		Correct:     1,
		Explanation: "A single shot uses about 7-9 grams of ground coffee; a double uses roughly twice that.",
	},
	{
		Text:        "Which coffee brewing method uses pressure?",
		Options:     []string{"French Press", "Pour Over", "Espresso", "Cold Brew"},
		Correct:     2,
		Explanation: "Espresso machines push hot water through the coffee puck at around 9 bar.",
	},
	{
		Text:        "What does 'crema' refer to in coffee?",
		Options:     []string{"Coffee grounds", "The golden foam on espresso", "A type of coffee bean", "Brewing time"},
		Correct:     1,
		Explanation: "Crema is the layer of foam formed when pressurized water emulsifies the coffee oils.",
	},
	{
		Text:        "Which coffee species accounts for most of the world's production?",
		Options:     []string{"Robusta", "Liberica", "Arabica", "Excelsa"},
		Correct:     2,
		Explanation: "Arabica makes up roughly 60% of global production and is prized for its sweeter, more complex taste.",
	},
	{
		Text:        "According to legend, in which country was coffee first discovered?",
		Options:     []string{"Yemen", "Ethiopia", "Turkey", "Brazil"},
		Correct:     1,
		Explanation: "The story goes that the Ethiopian goat herder Kaldi noticed his goats dancing after eating coffee cherries.",
	},
	{
		Text:        "Which drink is espresso topped with steamed milk and a thick layer of foam?",
		Options:     []string{"Latte", "Cappuccino", "Americano", "Ristretto"},
		Correct:     1,
		Explanation: "A cappuccino balances espresso, steamed milk and foam in roughly equal parts.",
	},
	{
		Text:        "What is an Americano?",
		Options:     []string{"Cold brew with milk", "Drip coffee with cream", "Espresso diluted with hot water", "Double espresso"},
		Correct:     2,
		Explanation: "An Americano is espresso lengthened with hot water, giving a drink similar in strength to drip coffee.",
	},
	{
		Text:        "Which grind size is typically used for a French press?",
		Options:     []string{"Extra fine", "Fine", "Medium", "Coarse"},
		Correct:     3,
		Explanation: "A coarse grind keeps the long immersion from over-extracting and stays out of the metal filter.",
	},
	{
		Text:        "What is a 'ristretto'?",
		Options:     []string{"A shorter, more concentrated espresso shot", "Espresso with a dash of milk foam", "A long espresso", "Espresso over ice"},
		Correct:     0,
		Explanation: "A ristretto uses the same dose as an espresso but about half the water, so it tastes sweeter and denser.",
	},
	{
		Text:        "Roughly how long should a standard espresso shot take to extract?",
		Options:     []string{"5-10 seconds", "25-30 seconds", "60-70 seconds", "2-3 minutes"},
		Correct:     1,
		Explanation: "About 25-30 seconds is the usual target; much faster tastes sour, much slower tastes bitter.",
	},
	{
		Text:        "Green coffee beans are the seeds of which fruit?",
		Options:     []string{"Cocoa pod", "Olive", "Coffee cherry", "Grape"},
		Correct:     2,
		Explanation: "Each coffee cherry usually holds two seeds, which are dried and roasted to become coffee beans.",
	},
	{
		Text:        "Which country is famous for Blue Mountain coffee?",
		Options:     []string{"Kenya", "Jamaica", "Indonesia", "Guatemala"},
		Correct:     1,
		Explanation: "Blue Mountain coffee grows in the Blue Mountains of Jamaica and is one of the most expensive coffees.",
	},
	{
		Text:        "What is an affogato?",
		Options:     []string{"Iced coffee with syrup", "Espresso with whipped cream", "Coffee with whiskey", "Espresso poured over ice cream"},
		Correct:     3,
		Explanation: "Affogato means 'drowned' in Italian: a scoop of gelato drowned in a shot of hot espresso.",
	},
}

// Default возвращает встроенный банк вопросов о кофе.
func Default() *quiz.Bank {
	bank, err := quiz.NewBank(DefaultTitle, coffeeQuestions)
	if err != nil {
		panic(err)
	}

	return bank
}
