// Package models holds the registry entities.
//
// Every relationship is stored on both sides: the forward reference on the
// student and the roster on the class, course or club. Keeping the two in
// step is the job of the services package.
package models
