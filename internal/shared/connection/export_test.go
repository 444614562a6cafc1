package connection

var WithRetry = withRetry
