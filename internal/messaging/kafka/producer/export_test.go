package producer

var Drain = drain
