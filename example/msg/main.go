package main

import (
	"encoding/json"
	"fmt"

	"go-weather/pkg/msg"
)

type cityResult struct {
	City        string  `json:"city"`
	Temperature float64 `json:"temperature"`
}

func main() {
	// Remember to set the MESSAGES_FILE_PATH env. Default location in init is configs/messages.yml
	// This file reproduces a standalone messages catalog
	msg.Init("example/msg/messages.yml")
	var messageWithOneField string = "weather.fetching"

	// Message without fields
	fmt.Println(msg.GetMessage("weather.prompt"))

	// Message with one field
	fmt.Println(msg.GetMessage(messageWithOneField, "London"))

	fmt.Println(msg.GetMessage("weather.temperature", "London", 10.5))

	// Load another messages file
	msg.Init("example/msg/example.yml")

	// Old and new messages loaded
	fmt.Println(msg.GetMessage("weather.prompt"))
	fmt.Println(msg.GetMessage("weather.forecast"))

	// Not found message
	fmt.Println(msg.GetMessage("weather.unknown-key"))

	// Struct field
	result := cityResult{
		City:        "London",
		Temperature: 10.5,
	}
	var resultJSON, _ = json.Marshal(result)
	fmt.Println(msg.GetMessage(messageWithOneField, string(resultJSON)))
	fmt.Println(msg.GetMessage(messageWithOneField, result))
}
