package services

// Services defined in this package:
// - RegistryService: students, classes, courses and clubs, plus the links
//   between them (course enrollment, club membership, class assignment)
