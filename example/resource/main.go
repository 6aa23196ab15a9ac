package main

import (
	"fmt"
	"reflect"

	"go-weather/pkg/resource"
)

func main() {
	// Remember to set the PROPERTIES_FILE_PATH env. Default location in init is configs/application.yml
	// This file reproduces a standalone properties file
	resource.Init("example/resource/application.yml")
	var valueString = "Value: "
	var valueType = ", Type: "

	// Get Raw Value
	var rawStringValue = resource.Get("app.string")
	var rawIntValue = resource.Get("app.int")
	var rawSliceValue = resource.Get("app.string-slice")
	fmt.Println("Raw String,", valueString, rawStringValue, valueType, reflect.TypeOf(rawStringValue))
	fmt.Println("Raw Int,", valueString, rawIntValue, valueType, reflect.TypeOf(rawIntValue))
	fmt.Println("Raw Slice,", valueString, rawSliceValue, valueType, reflect.TypeOf(rawSliceValue))

	// Get Formatted Value
	var stringValue = resource.GetString("app.string")
	var stringIntValue = resource.GetString("app.int")
	fmt.Println("Correct String parsed,", valueString, stringValue, valueType, reflect.TypeOf(stringValue))
	fmt.Println("Int parsed to String,", valueString, stringIntValue, valueType, reflect.TypeOf(stringIntValue))

	var intStringValue = resource.GetInt("app.string")
	var intValue = resource.GetInt("app.int")
	fmt.Println("Correct Int parsed to int,", valueString, intValue, valueType, reflect.TypeOf(intValue))
	fmt.Println("Incorrect String parsed to Int,", valueString, intStringValue, valueType, reflect.TypeOf(intStringValue))

	var duration = resource.GetDuration("app.duration")
	var stringDuration = resource.GetDuration("app.string")
	fmt.Println("Correct Duration parsed,", valueString, duration, valueType, reflect.TypeOf(duration))
	fmt.Println("Incorrect String parsed to Duration,", valueString, stringDuration, valueType, reflect.TypeOf(stringDuration))

	var boolValue = resource.GetBool("app.bool")
	var floatValue = resource.GetFloat64("app.float")
	fmt.Println("Correct Bool parsed,", valueString, boolValue, valueType, reflect.TypeOf(boolValue))
	fmt.Println("Correct Float parsed,", valueString, floatValue, valueType, reflect.TypeOf(floatValue))

	var stringSlice = resource.GetStringSlice("app.string-slice")
	var intSlice = resource.GetStringSlice("app.int-slice")
	fmt.Println("Example of String Slice,", valueString, stringSlice, valueType, reflect.TypeOf(stringSlice))
	fmt.Println("Example of Int Slice,", valueString, intSlice, valueType, reflect.TypeOf(intSlice))

	// Values written as ${ENV:default} resolve against the process environment,
	// falling back to the default when the variable is unset
	var baseURL = resource.GetString("app.provider.base-url")
	var timeout = resource.GetDuration("app.provider.timeout")
	fmt.Println("Env resolved Base URL,", valueString, baseURL, valueType, reflect.TypeOf(baseURL))
	fmt.Println("Env resolved Timeout,", valueString, timeout, valueType, reflect.TypeOf(timeout))
}
