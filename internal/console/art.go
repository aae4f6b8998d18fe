package console

var asciiArt = []string{
	`
    🐒 MONKEY PARADISE 🐒
       /|   /|
      ( :v:  )
       |(_)|
       ^^^^^^^^^^
`,
	`
    🙊 MONKEY BUSINESS 🙊
         .-""-.
        /  _  \
       |  (o)  |
        \  -  /
         ` + "`---`" + `
`,
	`
    🐵 PRIMATE STATION 🐵
      ___====-_  _-====___
    _--^^^#####//      \\#####^^^--_
 _-^##########// (    ) \\##########^-_
-############//  |\^^/|  \\############-
`,
	`
    🙉 MONKEY MADNESS 🙉
        \   o   /
         \ ._. /
      ____) (____
     /.-.\ / /.-.\
     \   ` + "`" + ` | ` + "`" + `   /
      ` + "`---' '---`" + `
`,
}
