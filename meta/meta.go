// meta/meta.go
package meta

// MAX_TERRITORIES bounds the number of territories a session may register.
const MAX_TERRITORIES = 5

// MAX_NAME_LENGTH is the longest territory name accepted at registration.
const MAX_NAME_LENGTH = 29

// MAX_COLOR_LENGTH is the longest army color accepted at registration.
const MAX_COLOR_LENGTH = 9

// MIN_ATTACK_TROOPS is the troop count a territory needs before it may attack.
const MIN_ATTACK_TROOPS = 2

// DIE_FACES is the number of faces on each combat die.
const DIE_FACES = 6

// MAX_TURNS caps an automated match that never reaches a mission.
const MAX_TURNS = 300

// CONQUEST_COLOR is the army whose holdings the conquest mission counts.
const CONQUEST_COLOR = "azul"

// CONQUEST_TARGET is the number of territories the conquest mission requires.
const CONQUEST_TARGET = 3
