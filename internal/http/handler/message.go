package handler

const oopsErr = "Oops! Something went wrong. Please try again later."
const badRequestErr = "The submitted form could not be read."

const (
	msgInvalidLogin     = "Invalid username or password."
	msgUsernameTaken    = "That username already exists. Please choose a different one."
	msgPasswordMismatch = "passwords need to match"
	msgRegistered       = "Registration successful. Please log in."
	msgPosted           = "Message posted."
)
