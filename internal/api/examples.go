package api

// ExampleTopics seed the form page with clickable suggestions.
var ExampleTopics = []string{
	"Artificial Intelligence",
	"Climate Change and Global Warming",
	"The History of the Internet",
	"Quantum Physics Basics",
	"Renewable Energy Sources",
	"Ancient Egyptian Civilization",
	"Machine Learning Fundamentals",
	"Space Exploration",
	"DNA and Genetics",
	"The Industrial Revolution",
}
