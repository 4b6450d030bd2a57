package stockroom

// MaxComponents is the fixed signature width: the cap on distinct component
// types for the life of the process. It bounds the column-slot array carried
// by every archetype.
const MaxComponents = 64
