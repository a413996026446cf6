package roc

const (
	TitlePrefix = "ROC-Curve with AUC value:"
	XLabel      = "False Positive Rate"
	YLabel      = "True Positive Rate"

	// TPR is on the first line of a rates file, FPR on the second.
	TPRLine = 1
	FPRLine = 2

	MaxLineSize = 64 * 1024 * 1024

	ScoreSeparator = ";"
)
