package validator

// defaultMessages is the built-in English catalog used when no catalog is
// configured or a key is missing from it.
var defaultMessages = map[string]string{
	"and":             "and",
	"required":        "This field is required.",
	"required_either": "At least one of these fields must be filled in.",
	"options":         "One or more options are not valid.",
	"compare":         "Must match ({param}).",
	"unique":          "The value ({value}) already exists.",
	"custom":          "The value is not valid.",
	"json":            "The data was not received correctly.",
	"email":           "Must be a valid e-mail address.",
	"url":             "Must be a valid URL (e.g. www.webpage.com).",
	"number":          "Must be a valid number.",
	"decimal":         "Must be a valid decimal number.",
	"extension":       "Only the following extensions are allowed ({param}).",

	"exact_val": "The value must be equal to ({param}).",
	"max_val":   "The value must be less than ({param}).",
	"min_val":   "The value must be greater than ({param}).",
	"range_val": "The value must be between {param}.",

	"exact_length": "The number of characters must be equal to ({param}).",
	"max_length":   "The number of characters must be less than ({param}).",
	"min_length":   "The number of characters must be greater than ({param}).",
	"range_length": "The number of characters must be between {param}.",

	"min_size": "The file size must not be less than {param}.",
	"max_size": "The file size must not exceed {param}.",

	"date":       "Must be a valid date.",
	"max_date":   "The date must be before {param}.",
	"min_date":   "The date must be after {param}.",
	"range_date": "The date must be between {param}.",

	"date_time":       "Must be a valid date and time.",
	"max_date_time":   "The date and time must be before {param}.",
	"min_date_time":   "The date and time must be after {param}.",
	"range_date_time": "The date and time must be between {param}.",

	"time":       "Must be a valid time.",
	"max_time":   "The time must be before {param}.",
	"min_time":   "The time must be after {param}.",
	"range_time": "The time must be between {param}.",

	"date_field":          "The date of the compared field is not valid.",
	"min_date_field":      "The date of this field must be after the date of the referenced field.",
	"max_date_field":      "The date of this field must be before the date of the referenced field.",
	"date_time_field":     "The date and time of the compared field is not valid.",
	"min_date_time_field": "The date and time of this field must be after the referenced field.",
	"max_date_time_field": "The date and time of this field must be before the referenced field.",
	"time_field":          "The time of the compared field is not valid.",
	"min_time_field":      "The time of this field must be after the time of the referenced field.",
	"max_time_field":      "The time of this field must be before the time of the referenced field.",

	"upload":         "The file could not be uploaded.",
	"upload_error_1": "The file exceeds the server size limit.",
	"upload_error_2": "The file exceeds the form size limit.",
	"upload_error_3": "The file was only partially uploaded, please try again.",
	"upload_error_4": "No file was uploaded.",
	"upload_error_6": "The temporary folder is missing.",
	"upload_error_7": "The file could not be written to disk.",
	"upload_error_8": "The file was rejected as potentially dangerous.",

	"string":             "This field does not allow:",
	"string_alpha":       "letters",
	"string_numbers":     "numbers",
	"string_spaces":      "blank spaces",
	"string_low_strips":  "underscores",
	"string_mid_strips":  "hyphens",
	"string_dots":        "dots",
	"string_commas":      "commas",
	"string_punctuation": "question and exclamation marks",
	"string_quotes":      "quotes",
	"string_symbols":     "symbols like (\\ [ ^)",

	"required_either_field": "The referenced field is not part of the form.",
	"unknown_rule":          "The validation rule is not recognized.",
}
