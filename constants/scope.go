package constants

// GlobalScope is the reserved statistics scope that aggregates an item key
// across all accounts. Account scopes are UUID strings, so this value can
// never collide with one.
const GlobalScope = "GLOBAL"
